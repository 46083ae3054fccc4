// Package installer runs one-shot provisioning containers against a
// server's volume: download a game server, write its config, whatever
// the install script says. The script runs in its own container so the
// workload image stays clean.
//
// Pipeline:
//
//	remove leftover ─▶ create nexus-install-<uuid> ─▶ start
//	       ─▶ stream output ─▶ wait for exit
//	       ─▶ exit 0: POST {status:"success"}   + InstallComplete event
//	          exit N: POST {status:"failed",     + InstallFailed event
//	                        message:<last 50 lines>}
//	       ─▶ remove the install container
//
// The install-status callback goes to
// <panel>/api/v1/servers/<uuid>/install-status with the node's bearer
// credential. Callbacks are best-effort: a Panel that is down does not
// change the install result. Container-level failures (bad image, dead
// daemon) skip the callback entirely; only a script that actually ran
// reports a status.
//
// Run is synchronous. The HTTP install endpoint calls it inline and
// returns the output; gRPC create/reinstall spawn it on a goroutine and
// let the events carry the outcome.
//
// Integration Points:
//
//   - pkg/runtime: RunInstall does the container legwork; this package
//     owns reporting.
//   - pkg/events: InstallComplete / InstallFailed for the Panel stream.
//   - pkg/manager: Reinstall and create-with-install delegate here.
package installer
