package ionotify

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/sigapair/airlab/pkg/errcode"
)

// PublishError is returned when a notification cannot be published.
func PublishError(id, stream string, err error) error {
	msg := "Cannot publish notification <em>%s</em> to stream <em>%s</em>"
	vars := []any{id, stream}
	return &gn.Error{
		Code: errcode.NotifyPublishError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("publish %s to %s: %w", id, stream, err),
	}
}
