package model

import (
	"time"
)

const (
	// AppName is the XDG prefix used for data and config files
	AppName = "dom314"

	DefaultBackend       = "rss"
	DefaultFetchTimeout  = 30 * time.Second
	DefaultWipeSchedule  = "@every 1h"
	DefaultPlayerCommand = "mpv"
	DefaultPlayerGUIArg  = "--force-window"

	DefaultLogMaxSize    = 50 // megabytes
	DefaultLogMaxAge     = 30 // days
	DefaultLogMaxBackups = 7
)
