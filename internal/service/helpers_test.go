package service

import (
	"io"
	"time"

	"github.com/sirupsen/logrus"
)

// testLogger returns a logger that discards output so test runs stay quiet.
func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

// fixedReference is a pinned generation time so determinism assertions can
// compare complete records, service dates included.
var fixedReference = time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
