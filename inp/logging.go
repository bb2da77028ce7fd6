// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp carries the ambient configuration and per-rank logging
// concerns of a RATTLE run. Reading simulation decks, meshes and material
// databases is outside this solver's scope; what survives here is the
// one-log-file-per-rank convention, adapted to log convergence and
// diagnostic lines instead of FEM assembly messages.
package inp

import (
	"log"
	"os"

	"github.com/cpmech/gosl/mpi"
	"github.com/cpmech/gosl/utl"
)

// logFile holds the handle to this rank's log file.
var logFile *os.File

// InitLogFile creates "<dirout>/<fnamekey>_p<rank>.log" and redirects the
// standard logger to it, one file per MPI rank.
func InitLogFile(dirout, fnamekey string) (err error) {
	var rank int
	if mpi.IsOn() {
		rank = mpi.Rank()
	}
	logFile, err = os.Create(utl.Sf("%s/%s_p%d.log", dirout, fnamekey, rank))
	if err != nil {
		return
	}
	log.SetOutput(logFile)
	return
}

// FlushLog closes the log file, flushing it to disk. Must be called before
// the process exits.
func FlushLog() {
	if logFile != nil {
		logFile.Close()
	}
}

// LogErr logs err, if any, and reports whether the caller should stop.
func LogErr(err error, msg string) (stop bool) {
	if err != nil {
		log.Printf("ERROR: %s : %s", msg, err.Error())
		return true
	}
	return false
}

// LogErrCond logs a formatted message when condition is true and reports
// whether the caller should stop.
func LogErrCond(condition bool, msg string, prm ...interface{}) (stop bool) {
	if condition {
		log.Printf("ERROR: %s", utl.Sf(msg, prm...))
		return true
	}
	return false
}
