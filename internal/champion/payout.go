package champion

// Payout is what a winning wager returns: the stake plus a confidence bonus,
// wager + floor(wager * confidence / 100). It is monotonic in both inputs.
func Payout(wager int64, confidence int) int64 {
	if wager <= 0 || confidence <= 0 {
		return 0
	}
	return wager + wager*int64(confidence)/100
}
