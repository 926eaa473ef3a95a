// Copyright (c) 2021 Hirotsuna Mizuno. All rights reserved.
// Use of this source code is governed by the MIT license that can be found in
// the LICENSE file.

package waitqueue

import (
	"log/slog"

	"github.com/google/uuid"
)

var discardLogger = slog.New(slog.DiscardHandler)

func queueName(name string) slog.Attr {
	return slog.String("queue", name)
}

func listenerAttr(id uuid.UUID, mode Mode) slog.Attr {
	return slog.Group("listener",
		slog.String("id", id.String()),
		slog.String("mode", mode.String()),
	)
}

// errorAttr returns an empty Attr for a nil error, which slog drops.
func errorAttr(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}
