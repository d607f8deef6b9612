// Package launch starts an editor on a file and turns start failures into
// advisor reports.
//
// Launches are fire-and-forget: the process is started and released, and
// its later exit is never observed.
package launch
