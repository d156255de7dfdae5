package sim

// BuyGoods purchases qty units of a good at the current market price. Only
// the current city's own goods are on offer. Validation failures surface as
// narration and leave state untouched.
func (e *Engine) BuyGoods(goodsID, qty int) bool {
	gs := e.state
	if e.refuseIfOver() {
		return false
	}
	if qty <= 0 {
		e.sink.Show("数量得是正数。")
		return false
	}
	g := gs.FindGoods(goodsID)
	if g == nil {
		e.sink.Show("市场上买不到这种货。")
		return false
	}
	city, ok := e.currentCity()
	if !ok {
		return false
	}
	if !tradedIn(city, g.ID) {
		e.sink.Show(printer.Sprintf("%s的市场不卖%s，去别的城市看看吧。", city.Name, g.Name))
		return false
	}
	if g.Price <= 0 {
		e.sink.Show("市场上现在买不到这种货。")
		return false
	}
	cost := g.Price * qty
	if gs.Cash < cost {
		e.sink.Show(printer.Sprintf("你的现金不够，买 %d%s%s 需要 %d 元。", qty, g.Unit, g.Name, cost))
		return false
	}
	if gs.CapacityRemaining() < qty {
		e.sink.Show(printer.Sprintf("你的仓库只剩 %d 个位置，装不下 %d%s%s。", gs.CapacityRemaining(), qty, g.Unit, g.Name))
		return false
	}
	gs.Cash -= cost
	g.Owned += qty
	gs.TotalGoods += qty
	e.sink.Show(printer.Sprintf("你买进了 %d%s%s，花去 %d 元。", qty, g.Unit, g.Name, cost))
	return true
}

// SellGoods sells qty units at the current market price. Foreign stock has
// no buyers outside its home city. Selling shady merchandise costs fame
// per unit.
func (e *Engine) SellGoods(goodsID, qty int) bool {
	gs := e.state
	if e.refuseIfOver() {
		return false
	}
	if qty <= 0 {
		e.sink.Show("数量得是正数。")
		return false
	}
	g := gs.FindGoods(goodsID)
	if g == nil || g.Owned < qty {
		e.sink.Show("你手里没有这么多货。")
		return false
	}
	city, ok := e.currentCity()
	if !ok {
		return false
	}
	if !tradedIn(city, g.ID) {
		e.sink.Show(printer.Sprintf("%s在%s没有销路，带回原产地再出手吧。", g.Name, city.Name))
		return false
	}
	if g.Price <= 0 {
		e.sink.Show(printer.Sprintf("现在没人收%s，等行情吧。", g.Name))
		return false
	}
	income := g.Price * qty
	gs.Cash += income
	g.Owned -= qty
	gs.TotalGoods -= qty
	e.sink.Show(printer.Sprintf("你卖出了 %d%s%s，进账 %d 元。", qty, g.Unit, g.Name, income))
	if g.FamePenalty > 0 {
		loss := g.FamePenalty * qty
		if loss > gs.Fame {
			loss = gs.Fame
		}
		if loss > 0 {
			gs.Fame -= loss
			e.sink.Show(printer.Sprintf("卖%s这种东西坏了你的名声，名声下降了 %d 点。", g.Name, loss))
		}
	}
	return true
}
