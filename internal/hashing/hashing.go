// Package hashing provides position keys and repetition counting for games.
package hashing

import "github.com/lgbarn/chessrules-go/internal/chess"

// RepetitionTracker counts how often each position has occurred in a game.
type RepetitionTracker struct {
	// hashTable maps Zobrist keys to the signatures recorded under them
	hashTable map[uint64][]PositionSignature
	// positions counts every recorded position, repeats included
	positions int
}

// PositionSignature identifies one distinct position and how many times it
// has been reached.
type PositionSignature struct {
	// Hash is the Zobrist key of the position
	Hash uint64
	// WeakHash is a fast placement hash guarding against key collisions
	WeakHash uint32
	// Occurrences is the number of times the position has been recorded
	Occurrences int
}

// NewRepetitionTracker creates an empty tracker.
func NewRepetitionTracker() *RepetitionTracker {
	return &RepetitionTracker{
		hashTable: make(map[uint64][]PositionSignature),
	}
}

// Record adds the board's position and returns how many times it has now
// occurred, this occurrence included.
func (r *RepetitionTracker) Record(board *chess.Board) int {
	if board == nil {
		return 0
	}
	sig := signatureOf(board)
	r.positions++

	existing := r.hashTable[sig.Hash]
	for i := range existing {
		if signaturesMatch(sig, existing[i]) {
			existing[i].Occurrences++
			return existing[i].Occurrences
		}
	}

	sig.Occurrences = 1
	r.hashTable[sig.Hash] = append(existing, sig)
	return 1
}

// Count returns how many times the board's position has been recorded.
func (r *RepetitionTracker) Count(board *chess.Board) int {
	if board == nil {
		return 0
	}
	sig := signatureOf(board)
	for _, existing := range r.hashTable[sig.Hash] {
		if signaturesMatch(sig, existing) {
			return existing.Occurrences
		}
	}
	return 0
}

// MaxOccurrences returns the highest repetition count of any position.
func (r *RepetitionTracker) MaxOccurrences() int {
	most := 0
	for _, sigs := range r.hashTable {
		for _, sig := range sigs {
			most = max(most, sig.Occurrences)
		}
	}
	return most
}

// UniqueCount returns the number of distinct positions recorded.
func (r *RepetitionTracker) UniqueCount() int {
	count := 0
	for _, sigs := range r.hashTable {
		count += len(sigs)
	}
	return count
}

// PositionCount returns the number of recorded positions, repeats included.
func (r *RepetitionTracker) PositionCount() int {
	return r.positions
}

func signatureOf(board *chess.Board) PositionSignature {
	return PositionSignature{
		Hash:     GenerateZobristHash(board),
		WeakHash: WeakHash(board),
	}
}

// signaturesMatch checks if two position signatures describe the same position.
func signaturesMatch(a, b PositionSignature) bool {
	return a.Hash == b.Hash && a.WeakHash == b.WeakHash
}
