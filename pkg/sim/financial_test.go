package sim

import "testing"

func TestProcessInterest(t *testing.T) {
	tests := []struct {
		name        string
		debt        int
		savings     int
		wantDebt    int
		wantSavings int
	}{
		{"starting debt", 5000, 0, 5500, 0},
		{"savings only", 0, 10000, 0, 10100},
		{"both balances", 5000, 10000, 5500, 10100},
		{"zero balances are no-ops", 0, 0, 0, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e, gs, _ := newTestEngine(t, &scriptedRNG{})
			gs.Debt = tc.debt
			gs.BankSavings = tc.savings
			e.processInterest()
			if gs.Debt != tc.wantDebt {
				t.Errorf("debt = %d, want %d", gs.Debt, tc.wantDebt)
			}
			if gs.BankSavings != tc.wantSavings {
				t.Errorf("savings = %d, want %d", gs.BankSavings, tc.wantSavings)
			}
		})
	}
}

func TestCheckDebtLimit(t *testing.T) {
	e, gs, rec := newTestEngine(t, &scriptedRNG{})
	gs.Debt = 150000
	e.checkDebtLimit()
	if gs.Health != 70 {
		t.Errorf("health = %d, want 70", gs.Health)
	}
	if len(rec.Messages) == 0 {
		t.Error("expected a punitive message")
	}
}

func TestCheckDebtLimitUnderCeiling(t *testing.T) {
	e, gs, rec := newTestEngine(t, &scriptedRNG{})
	gs.Debt = 100000
	e.checkDebtLimit()
	if gs.Health != 100 {
		t.Errorf("health = %d, want 100", gs.Health)
	}
	if len(rec.Messages) != 0 {
		t.Errorf("unexpected messages: %v", rec.Messages)
	}
}

func TestCheckDebtLimitCanKill(t *testing.T) {
	e, gs, _ := newTestEngine(t, &scriptedRNG{})
	gs.Debt = 150000
	gs.Health = 20
	e.checkDebtLimit()
	if gs.Health != 0 {
		t.Errorf("health = %d, want 0", gs.Health)
	}
	if !gs.IsGameOver {
		t.Error("expected game over on debt-limit death")
	}
}

func TestCheckBankHacking(t *testing.T) {
	t.Run("loss on unlucky roll", func(t *testing.T) {
		// Intn(1000)=25 passes the 1-in-25 gate, Intn(10)=8 makes the
		// divisor 10.
		e, gs, rec := newTestEngine(t, &scriptedRNG{intn: []int{25, 8}})
		gs.BankSavings = 10000
		e.checkBankHacking()
		if gs.BankSavings != 9000 {
			t.Errorf("savings = %d, want 9000", gs.BankSavings)
		}
		if len(rec.Messages) == 0 {
			t.Error("expected a theft message")
		}
	})
	t.Run("large balance can foil the attack", func(t *testing.T) {
		// Gate passes, then Intn(20)=3 (3%3==0) foils it.
		e, gs, _ := newTestEngine(t, &scriptedRNG{intn: []int{25, 3}})
		gs.BankSavings = 200000
		e.checkBankHacking()
		if gs.BankSavings != 200000 {
			t.Errorf("savings = %d, want untouched 200000", gs.BankSavings)
		}
	})
	t.Run("small balance never targeted", func(t *testing.T) {
		e, gs, _ := newTestEngine(t, &scriptedRNG{intn: []int{25, 8}})
		gs.BankSavings = 999
		e.checkBankHacking()
		if gs.BankSavings != 999 {
			t.Errorf("savings = %d, want 999", gs.BankSavings)
		}
	})
	t.Run("disabled feature", func(t *testing.T) {
		e, gs, _ := newTestEngine(t, &scriptedRNG{intn: []int{25, 8}})
		WithBankHacking(false)(e)
		gs.BankSavings = 10000
		e.checkBankHacking()
		if gs.BankSavings != 10000 {
			t.Errorf("savings = %d, want 10000", gs.BankSavings)
		}
	})
}

func TestBankDepositAndWithdraw(t *testing.T) {
	e, gs, _ := newTestEngine(t, &scriptedRNG{})

	if !e.BankDeposit(1500) {
		t.Fatal("deposit failed")
	}
	if gs.Cash != 500 || gs.BankSavings != 1500 {
		t.Errorf("cash=%d savings=%d, want 500/1500", gs.Cash, gs.BankSavings)
	}
	if e.BankDeposit(10000) {
		t.Error("deposit beyond cash should fail")
	}
	if !e.BankWithdraw(1000) {
		t.Fatal("withdraw failed")
	}
	if gs.Cash != 1500 || gs.BankSavings != 500 {
		t.Errorf("cash=%d savings=%d, want 1500/500", gs.Cash, gs.BankSavings)
	}
	if e.BankWithdraw(5000) {
		t.Error("withdraw beyond savings should fail")
	}
	if e.BankDeposit(-5) || e.BankWithdraw(0) {
		t.Error("non-positive amounts should fail")
	}
}

func TestRepayDebt(t *testing.T) {
	e, gs, _ := newTestEngine(t, &scriptedRNG{})
	gs.Cash = 10000
	gs.Debt = 3000

	if !e.RepayDebt(2000) {
		t.Fatal("repay failed")
	}
	if gs.Cash != 8000 || gs.Debt != 1000 {
		t.Errorf("cash=%d debt=%d, want 8000/1000", gs.Cash, gs.Debt)
	}
	// Overpayment settles the debt and keeps the change.
	if !e.RepayDebt(5000) {
		t.Fatal("final repay failed")
	}
	if gs.Cash != 7000 || gs.Debt != 0 {
		t.Errorf("cash=%d debt=%d, want 7000/0", gs.Cash, gs.Debt)
	}
	if e.RepayDebt(100) {
		t.Error("repaying with no debt should fail")
	}
}
