// Package tetris implements the rules of a falling-block puzzle game with a
// message that is revealed line by line as rows are cleared.
//
// A Session owns one game: the Board, the active Piece, the pre-generated
// next piece, the score counters and the message reveal state. Every
// operation mutates the session synchronously; a session is meant to be
// driven from a single frame loop (see DropSystem) and is not safe for
// concurrent use.
//
// Collaborators outside the rules are reached through small interfaces:
// Display receives HUD updates and Navigator is told when the line goal is
// reached.
package tetris
