// Package server implements the server side of the battleship protocol.
//
// The server performs the following steps:
// 	1. Listens for TCP connections and serves them one at a time: each game is
// 	   short-lived and a connection is served to completion before the next is
// 	   accepted.
// 	2. On connection, it constructs a fresh Session with an unpositioned board
// 	   and waits for the client handshake, a START_GAME message.
// 	3. On a valid handshake it places the ships and replies with
// 	   POSITIONING_SHIPS followed by SHIPS_IN_POSITION, in that order.
// 	4. It then loops, expecting exactly one SHOT per turn. A shot with a
// 	   missing or invalid coordinate is answered with ERROR and the turn is
// 	   retried; a valid shot is resolved and answered with HIT or MISS.
// 	5. When the final ship cell is hit, it replies GAME_OVER with the shot
// 	   tally as the score and closes the session.
//
// Any well-formed message of an unexpected type for the current state is a
// protocol violation: the server sends ERROR and terminates the connection.
// A disconnect or idle timeout abandons the session immediately; there is no
// resume. Session state lives only for the lifetime of its connection and is
// never shared.
package server
