package main

import "errors"

// ErrAlreadyInitialized is returned by init when the configuration file exists.
var ErrAlreadyInitialized = errors.New("configuration already exists, use --force to overwrite")
