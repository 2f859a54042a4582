package widerand

import (
	"time"

	"github.com/zeebo/widerand/internal/pcg"
)

var gen = pcg.New(uint64(time.Now().UnixNano()), 0)

const trials = 10000
