// Package client implements the client side of the battleship protocol.
//
// The client performs the following steps:
//	1. Connects to the server over TCP.
//	2. Sends the START_GAME handshake and requires POSITIONING_SHIPS followed
//	   by SHIPS_IN_POSITION, in exactly that order. Any deviation is fatal.
//	3. Loops: obtains a coordinate from its shot source, sends SHOT and reads
//	   the reply. HIT and MISS mark the local view at that coordinate; ERROR
//	   is reported and the turn retried with a fresh coordinate; GAME_OVER
//	   ends the loop with the final score.
//	4. Renders the local view between turns when an output writer is set.
//
// The local view is write-only from server feedback: it records hit and miss
// marks per shot and never infers ship positions.
//
// Coordinates come from a ShotSource: PromptSource reads them interactively,
// re-prompting on invalid input without contacting the server; AutoSource
// fires at all 81 cells in a shuffled order for unattended play.
package client
