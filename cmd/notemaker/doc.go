// Package main hosts the notemaker CLI.
//
// Commands turn SRT subtitle files into structured summary notes, either one
// local file at a time, for every subtitle in a Google Drive folder, or
// continuously for files dropped into the input directory. Configuration and
// collaborators are resolved lazily by commandContext so each command only
// builds what it uses.
package main
