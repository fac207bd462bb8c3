package hashing

import "github.com/lgbarn/chesscore-go/internal/chess"

// Zobrist keys: one per (piece, square), one for Black to move and one per
// castling bookkeeping flag.
var (
	pieceKeys    [chess.NumCells][chess.NumSquares]uint64
	blackToMove  uint64
	castlingKeys [6]uint64
)

func init() {
	// Fixed seed so hashes are stable between runs.
	rng := splitMix64(0x5eed_c4e5_5c0d_e001)
	for cell := chess.WhitePawn; cell <= chess.BlackKing; cell++ {
		for sq := range pieceKeys[cell] {
			pieceKeys[cell][sq] = rng.next()
		}
	}
	blackToMove = rng.next()
	for i := range castlingKeys {
		castlingKeys[i] = rng.next()
	}
}

type splitMix64 uint64

func (s *splitMix64) next() uint64 {
	*s += 0x9e3779b97f4a7c15
	z := uint64(*s)
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

// GenerateZobristHash returns the Zobrist hash of the pieces on the board,
// the side to move and the castling flags.
func GenerateZobristHash(game *chess.Game, toMove chess.Side) uint64 {
	var hash uint64
	for i := 0; i < chess.NumSquares; i++ {
		if cell := game.Get(chess.Pos(i/chess.BoardSize, i%chess.BoardSize)); cell != chess.Empty {
			hash ^= pieceKeys[cell][i]
		}
	}
	if toMove == chess.Black {
		hash ^= blackToMove
	}
	for i, moved := range game.CastlingFlags() {
		if moved {
			hash ^= castlingKeys[i]
		}
	}
	return hash
}

// WeakHash is a cheap position checksum independent of the Zobrist keys:
// the sum of cell value times square number over occupied squares.
func WeakHash(game *chess.Game) uint32 {
	var sum uint32
	for i := 0; i < chess.NumSquares; i++ {
		if cell := game.Get(chess.Pos(i/chess.BoardSize, i%chess.BoardSize)); cell != chess.Empty {
			sum += uint32(cell) * uint32(i+1)
		}
	}
	return sum
}
