package report

import "errors"

var (
	ErrUnsupportedFormat = errors.New("report format must be one of: html, pdf, xlsx")
	ErrRenderFailed      = errors.New("failed to render report")
)
