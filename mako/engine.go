package mako

import "log/slog"

// reg returns the value of the given register.
func (m *Mako) reg(r int32) int32 {
	return m.mem.Get(r)
}

// fetch returns the word at the program counter, and moves past it.
func (m *Mako) fetch() int32 {
	pc := m.mem.Get(PC)
	m.mem.Set(PC, pc+1)
	return m.mem.Get(pc)
}

// push stores a value on the data stack.
//
// Neither stack is bounds-checked; a runaway program will
// overwrite whatever lies next to them.
func (m *Mako) push(v int32) {
	dp := m.mem.Get(DP)
	m.mem.Set(DP, dp+1)
	m.mem.Set(dp, v)
}

// pop removes the top of the data stack.
func (m *Mako) pop() int32 {
	dp := m.mem.Get(DP) - 1
	m.mem.Set(DP, dp)
	return m.mem.Get(dp)
}

// pop2 removes the two topmost values, a being the top.
func (m *Mako) pop2() (a, b int32) {
	a = m.pop()
	b = m.pop()
	return a, b
}

// rpush stores a value on the return stack.
func (m *Mako) rpush(v int32) {
	rp := m.mem.Get(RP)
	m.mem.Set(RP, rp+1)
	m.mem.Set(rp, v)
}

// rpop removes the top of the return stack.
func (m *Mako) rpop() int32 {
	rp := m.mem.Get(RP) - 1
	m.mem.Set(RP, rp)
	return m.mem.Get(rp)
}

// branch jumps to the operand at the program counter if cond is
// true, otherwise steps over it.
func (m *Mako) branch(cond bool) {
	pc := m.mem.Get(PC)
	if cond {
		m.mem.Set(PC, m.mem.Get(pc))
	} else {
		m.mem.Set(PC, pc+1)
	}
}

// truth is the canonical encoding of a boolean.
func truth(b bool) int32 {
	if b {
		return -1
	}
	return 0
}

// div is a division which yields zero for a zero divisor.
func div(b, a int32) int32 {
	if a == 0 {
		return 0
	}
	return b / a
}

// mod is a floored modulo; for a positive divisor the result is
// never negative.
func mod(b, a int32) int32 {
	if a == 0 {
		return 0
	}
	r := b % a
	if r < 0 {
		r += a
	}
	return r
}

// Tick executes a single instruction.
func (m *Mako) Tick() {

	if m.trace {
		pc := m.mem.Get(PC)
		text, _ := Disassemble(m.mem, pc)
		m.Logger.Debug("tick",
			slog.Int("pc", int(pc)),
			slog.String("op", text),
			slog.Int("dp", int(m.mem.Get(DP))),
			slog.Int("rp", int(m.mem.Get(RP))))
	}

	switch m.fetch() {
	case OpConst:
		m.push(m.fetch())
	case OpCall:
		m.rpush(m.mem.Get(PC) + 1)
		m.mem.Set(PC, m.mem.Get(m.mem.Get(PC)))
	case OpJump:
		m.mem.Set(PC, m.mem.Get(m.mem.Get(PC)))
	case OpJumpZ:
		m.branch(m.pop() == 0)
	case OpJumpIf:
		m.branch(m.pop() != 0)
	case OpLoad:
		m.push(m.load(m.pop()))
	case OpStor:
		addr := m.pop()
		m.store(addr, m.pop())
	case OpReturn:
		m.mem.Set(PC, m.rpop())
	case OpDrop:
		m.pop()
	case OpSwap:
		a, b := m.pop2()
		m.push(a)
		m.push(b)
	case OpDup:
		m.push(m.mem.Get(m.mem.Get(DP) - 1))
	case OpOver:
		m.push(m.mem.Get(m.mem.Get(DP) - 2))
	case OpStr:
		m.rpush(m.pop())
	case OpRts:
		m.push(m.rpop())
	case OpAdd:
		a, b := m.pop2()
		m.push(b + a)
	case OpSub:
		a, b := m.pop2()
		m.push(b - a)
	case OpMul:
		a, b := m.pop2()
		m.push(b * a)
	case OpDiv:
		a, b := m.pop2()
		m.push(div(b, a))
	case OpMod:
		a, b := m.pop2()
		m.push(mod(b, a))
	case OpAnd:
		a, b := m.pop2()
		m.push(b & a)
	case OpOr:
		a, b := m.pop2()
		m.push(b | a)
	case OpXor:
		a, b := m.pop2()
		m.push(b ^ a)
	case OpNot:
		m.push(^m.pop())
	case OpSgt:
		a, b := m.pop2()
		m.push(truth(b > a))
	case OpSlt:
		a, b := m.pop2()
		m.push(truth(b < a))
	case OpNext:
		// The counter stays on the return stack when the loop ends.
		top := m.mem.Get(RP) - 1
		n := m.mem.Get(top) - 1
		m.mem.Set(top, n)
		m.branch(n >= 0)
	}
}

// step runs instructions until the program counter reaches Halt, in
// which case false is returned, or the next instruction is SYNC.
func (m *Mako) step() bool {
	for {
		pc := m.mem.Get(PC)
		if pc == Halt {
			return false
		}
		if m.mem.Get(pc) == OpSync {
			return true
		}
		m.Tick()
	}
}

// Run executes the program until the next SYNC instruction, then
// produces a frame; or until the program halts, in which case ErrHalt
// is returned.
//
// The function will not return until one of those two things happens.
func (m *Mako) Run() error {
	if !m.step() {
		m.Logger.Debug("halted", slog.Uint64("frames", m.frames))
		return ErrHalt
	}

	m.mem.Set(PC, m.mem.Get(PC)+1)
	m.sync()
	return nil
}
