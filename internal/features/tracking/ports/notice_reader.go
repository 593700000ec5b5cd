package ports

import (
	"context"

	noticedomain "tracking-viewer/internal/features/notices/domain"
)

// NoticeReader supplies the operator notice shown above the tracking table.
type NoticeReader interface {
	// Current returns the active notice, or nil when there is none.
	Current(ctx context.Context) (*noticedomain.Notice, error)
}
