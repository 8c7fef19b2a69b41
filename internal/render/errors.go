package render

import "errors"

var errNoFrame = errors.New("render: nothing rendered yet")
