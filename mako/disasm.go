package mako

import (
	"fmt"

	"github.com/skx/makovm/memory"
)

// Opcode contains details of a specific instruction.
type Opcode struct {
	// Name is the human-readable mnemonic.
	Name string

	// Operand is true if the instruction is followed by an argument.
	Operand bool
}

// Opcodes describes every instruction we implement, indexed by value.
var Opcodes = map[int32]Opcode{
	OpConst:  {Name: "CONST", Operand: true},
	OpCall:   {Name: "CALL", Operand: true},
	OpJump:   {Name: "JUMP", Operand: true},
	OpJumpZ:  {Name: "JUMPZ", Operand: true},
	OpJumpIf: {Name: "JUMPIF", Operand: true},
	OpLoad:   {Name: "LOAD"},
	OpStor:   {Name: "STOR"},
	OpReturn: {Name: "RETURN"},
	OpDrop:   {Name: "DROP"},
	OpSwap:   {Name: "SWAP"},
	OpDup:    {Name: "DUP"},
	OpOver:   {Name: "OVER"},
	OpStr:    {Name: "STR"},
	OpRts:    {Name: "RTS"},
	OpAdd:    {Name: "ADD"},
	OpSub:    {Name: "SUB"},
	OpMul:    {Name: "MUL"},
	OpDiv:    {Name: "DIV"},
	OpMod:    {Name: "MOD"},
	OpAnd:    {Name: "AND"},
	OpOr:     {Name: "OR"},
	OpXor:    {Name: "XOR"},
	OpNot:    {Name: "NOT"},
	OpSgt:    {Name: "SGT"},
	OpSlt:    {Name: "SLT"},
	OpSync:   {Name: "SYNC"},
	OpNext:   {Name: "NEXT", Operand: true},
}

// Disassemble returns a textual form of the instruction at addr,
// along with the number of words it occupies.
//
// Unknown opcodes, which execute as no-ops, are shown as data.
func Disassemble(mem *memory.Memory, addr int32) (string, int32) {
	op := mem.Get(addr)

	info, ok := Opcodes[op]
	if !ok {
		return fmt.Sprintf(".WORD %d", op), 1
	}
	if info.Operand {
		return fmt.Sprintf("%s %d", info.Name, mem.Get(addr+1)), 2
	}
	return info.Name, 1
}
