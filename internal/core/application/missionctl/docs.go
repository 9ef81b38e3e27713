// Package missionctl runs the butler robot's mission loop. It owns the
// Mission aggregate and drives the delivery cycle: travel to the kitchen,
// deliver the queued orders table by table, return home.
//
// The package includes:
//   - Control: the single-goroutine mission loop with asynchronous operator
//     signals (queue edits, cancellation) and bounded navigation retries
//   - Journal: the in-memory buffer of finished deliveries awaiting archival
//
// Key behaviors:
//   - Cancellation preempts the navigation goal in flight and retreats to a
//     recovery waypoint chosen by the RecoveryPlanner
//   - A leg that exhausts its retry budget aborts the mission toward home
//     and surfaces a fatal alert to the operator
//   - Recovery ending with orders still pending resumes the cycle from the
//     kitchen; the robot never goes idle with undelivered orders unaddressed
package missionctl
