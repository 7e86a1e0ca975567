package service

// summarize counts every transaction by status and sums completed deposits and
// withdrawals. Transfers only contribute to the counters.
func summarize(transactions []Transaction) AnalyticsSummary {
	var summary AnalyticsSummary
	for _, tx := range transactions {
		summary.TotalTransactions++

		switch tx.Status {
		case TransactionStatusCompleted:
			summary.Completed++
		case TransactionStatusPending:
			summary.Pending++
		case TransactionStatusFailed:
			summary.Failed++
		}

		if tx.Status != TransactionStatusCompleted {
			continue
		}
		switch tx.Type {
		case TransactionTypeDeposit:
			summary.TotalDeposits += tx.Amount
		case TransactionTypeWithdrawal:
			summary.TotalWithdrawals += tx.Amount
		}
	}
	summary.NetFlow = summary.TotalDeposits - summary.TotalWithdrawals
	return summary
}
