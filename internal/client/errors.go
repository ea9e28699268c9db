package client

import "errors"

var ErrNilDependency = errors.New("client dependency is nil")
