/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package log holds the logger of the status list client.
package log

import (
	"github.com/sirupsen/logrus"
)

// ModuleName is the value of the module field of every log entry.
const ModuleName = "StatusList"

var logger = logrus.StandardLogger().WithField("module", ModuleName)

// Logger returns the logger to use within this module. Entries carry a module field so they can be
// recognized in an application log.
func Logger() *logrus.Entry {
	return logger
}
