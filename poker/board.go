package poker

// PairedAt returns where the board first pairs.
// 0   : not paired
// 1-3 : paired at flop
// 4   : paired at turn
// 5   : paired at river
func PairedAt(board []Card) int {
	m := make(map[int32]int)
	pairedAtIdx := 0
	for i := 0; i < len(board); i++ {
		rank := board[i].Rank()
		_, exists := m[rank]
		if exists {
			pairedAtIdx = i + 1
			break
		}
		m[rank] = 1
	}
	return pairedAtIdx
}

func IsPaired(board []Card) bool {
	if board == nil {
		return false
	}

	return PairedAt(board) > 0
}
