package engine_test

import (
	"math/rand"
	"sort"
	"strings"
	"testing"

	nchess "github.com/notnil/chess"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

func oracleMoves(g *nchess.Game) []string {
	var names []string
	for _, m := range g.ValidMoves() {
		names = append(names, m.String())
	}
	sort.Strings(names)
	return names
}

// TestAgainstOracle replays seeded random games against an independent
// move generator and compares the legal move sets at every ply.
func TestAgainstOracle(t *testing.T) {
	starts := []string{
		engine.InitialFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
	}

	for i, start := range starts {
		for seed := int64(1); seed <= 5; seed++ {
			rng := rand.New(rand.NewSource(seed*100 + int64(i)))
			board, err := engine.NewBoardFromFEN(start)
			testutil.AssertNoError(t, err)
			opt, err := nchess.FEN(start)
			testutil.AssertNoError(t, err)
			game := nchess.NewGame(opt)

			for ply := 0; ply < 150; ply++ {
				ours := testutil.MoveNames(engine.LegalMoveList(board))
				theirs := oracleMoves(game)
				if len(ours) == 0 && len(theirs) == 0 {
					ours, theirs = nil, nil
				}
				testutil.AssertEqual(t, ours, theirs, "%s seed %d ply %d: %s", start, seed, ply, engine.BoardToFEN(board))
				if t.Failed() {
					return
				}

				fields := strings.Fields(engine.BoardToFEN(board))
				oracleFields := strings.Fields(game.Position().String())
				testutil.AssertEqual(t, fields[:3], oracleFields[:3], "position fields at ply %d", ply)

				if game.Outcome() != nchess.NoOutcome {
					switch game.Method() {
					case nchess.Checkmate:
						testutil.AssertEqual(t, board.Status, chess.Checkmate)
					case nchess.Stalemate:
						testutil.AssertEqual(t, board.Status, chess.Stalemate)
					default:
						// Automatic draws are reported, never terminal.
						testutil.AssertEqual(t, board.Status, chess.Ongoing)
					}
					break
				}

				moves := engine.LegalMoveList(board)
				m := moves[rng.Intn(len(moves))]
				if ok, err := engine.ApplyMove(board, m); err != nil || !ok {
					t.Fatalf("ApplyMove(%s) = %v, %v", m, ok, err)
				}
				played := false
				for _, vm := range game.ValidMoves() {
					if vm.String() == m.String() {
						testutil.AssertNoError(t, game.Move(vm))
						played = true
						break
					}
				}
				testutil.AssertTrue(t, played, "oracle has no move %s", m)
			}
		}
	}
}
