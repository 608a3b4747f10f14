// Package seed creates the demo roster of people and brings it, or the
// user's own edits, onto the contacts server.
//
// The remote workflow processes one person at a time. For each person it
// replaces a stale remote photo, uploads the local photo, drops the local
// copy once the upload succeeded, posts the record, and then waits a short
// settling delay before the next person. Photo and file operations are
// best effort: their failures go to an error callback and never stop the
// roster.
package seed
