package sim

// processInterest compounds debt and savings once per tick. Both are
// no-ops at zero balance.
func (e *Engine) processInterest() {
	gs := e.state
	cfg := e.cat.Game.Financial
	if gs.Debt > 0 {
		gs.Debt += int(float64(gs.Debt) * cfg.DebtInterestRate)
	}
	if gs.BankSavings > 0 {
		gs.BankSavings += int(float64(gs.BankSavings) * cfg.BankInterestRate)
	}
}

// checkDebtLimit punishes a debt above the ceiling: the creditors send
// someone around.
func (e *Engine) checkDebtLimit() {
	gs := e.state
	cfg := e.cat.Game.Financial
	if cfg.MaxDebtLimit <= 0 || gs.Debt <= cfg.MaxDebtLimit {
		return
	}
	gs.AddHealth(-cfg.DebtHealthPenalty)
	e.sink.Show(printer.Sprintf("你欠债超过 %d 元，高利贷派人把你打了一顿！健康下降了 %d 点。", cfg.MaxDebtLimit, cfg.DebtHealthPenalty))
	if gs.Health <= 0 {
		e.endGame()
	}
}

// checkBankHacking models the rare savings theft: only balances of 1000
// and up are interesting, the hit lands about 1 in 25 ticks, and very
// large balances both lose a smaller share and sometimes see the attack
// foiled outright.
func (e *Engine) checkBankHacking() {
	gs := e.state
	if !e.bankHacking || gs.BankSavings < 1000 {
		return
	}
	if e.rng.Intn(1000)%25 != 0 {
		return
	}
	var loss int
	if gs.BankSavings > 100000 {
		if e.rng.Intn(20)%3 == 0 {
			e.sink.Show("黑客试图入侵你的银行账户，幸好银行的风控拦住了他们！")
			return
		}
		loss = gs.BankSavings / (2 + e.rng.Intn(20))
	} else {
		loss = gs.BankSavings / (2 + e.rng.Intn(10))
	}
	if loss <= 0 {
		return
	}
	gs.BankSavings -= loss
	e.sink.Show(printer.Sprintf("你的银行账户被黑客入侵，损失了 %d 元存款！", loss))
}

// BankDeposit moves cash into savings.
func (e *Engine) BankDeposit(amount int) bool {
	gs := e.state
	if e.refuseIfOver() {
		return false
	}
	if amount <= 0 {
		e.sink.Show("存款金额得是正数。")
		return false
	}
	if gs.Cash < amount {
		e.sink.Show("你身上没有这么多现金。")
		return false
	}
	gs.Cash -= amount
	gs.BankSavings += amount
	e.sink.Show(printer.Sprintf("你存入了 %d 元，账户余额 %d 元。", amount, gs.BankSavings))
	return true
}

// BankWithdraw moves savings back to cash.
func (e *Engine) BankWithdraw(amount int) bool {
	gs := e.state
	if e.refuseIfOver() {
		return false
	}
	if amount <= 0 {
		e.sink.Show("取款金额得是正数。")
		return false
	}
	if gs.BankSavings < amount {
		e.sink.Show("你的账户里没有这么多钱。")
		return false
	}
	gs.BankSavings -= amount
	gs.Cash += amount
	e.sink.Show(printer.Sprintf("你取出了 %d 元，账户余额 %d 元。", amount, gs.BankSavings))
	return true
}

// RepayDebt pays down debt with cash. Paying more than is owed settles
// the debt and keeps the change.
func (e *Engine) RepayDebt(amount int) bool {
	gs := e.state
	if e.refuseIfOver() {
		return false
	}
	if amount <= 0 {
		e.sink.Show("还款金额得是正数。")
		return false
	}
	if gs.Debt <= 0 {
		e.sink.Show("你现在没有欠债。")
		return false
	}
	if gs.Cash < amount {
		e.sink.Show("你身上没有这么多现金。")
		return false
	}
	if amount > gs.Debt {
		amount = gs.Debt
	}
	gs.Cash -= amount
	gs.Debt -= amount
	if gs.Debt == 0 {
		e.sink.Show("你还清了全部欠债！无债一身轻。")
	} else {
		e.sink.Show(printer.Sprintf("你偿还了 %d 元，还欠 %d 元。", amount, gs.Debt))
	}
	return true
}
