package mako

// Opcodes.
const (
	OpConst  = 0
	OpCall   = 1
	OpJump   = 2
	OpJumpZ  = 3
	OpJumpIf = 4
	OpLoad   = 10
	OpStor   = 11
	OpReturn = 12
	OpDrop   = 13
	OpSwap   = 14
	OpDup    = 15
	OpOver   = 16
	OpStr    = 17 // data stack to return stack
	OpRts    = 18 // return stack to data stack
	OpAdd    = 19
	OpSub    = 20
	OpMul    = 21
	OpDiv    = 22
	OpMod    = 23
	OpAnd    = 24
	OpOr     = 25
	OpXor    = 26
	OpNot    = 27
	OpSgt    = 28
	OpSlt    = 29
	OpSync   = 30
	OpNext   = 31
)

// Registers, and I/O ports, which live at the bottom of memory.
const (
	PC = 0  // program counter
	DP = 1  // data stack pointer
	RP = 2  // return stack pointer
	GP = 3  // grid pointer
	GT = 4  // grid tile pointer
	SP = 5  // sprite pointer
	ST = 6  // sprite tile pointer
	SX = 7  // scroll X
	SY = 8  // scroll Y
	GS = 9  // grid horizontal skip
	CL = 10 // clear color
	RN = 11 // random number
	KY = 12 // key input
	CO = 13 // character I/O
	AU = 14 // audio-out (8khz, 8-bit)
	KB = 15 // keyboard-in
	XO = 16 // bidirectional external IO
	XA = 17 // external argument
	XS = 18 // external status
	RV = 19 // raster vector

	// Registers is the number of reserved words at the start of memory.
	Registers = 20
)

// Halt is the program counter value which stops the machine.
const Halt = -1

// Key bits, as seen through KY.
const (
	KeyUp    = 0x01
	KeyRight = 0x02
	KeyDown  = 0x04
	KeyLeft  = 0x08
	KeyA     = 0x10
	KeyB     = 0x20
)

// Commands written to XS.
const (
	XClose     = 0
	XOpenRead  = 1
	XOpenWrite = 2
)

// XSupported is read from XS; reading and writing local files.
const XSupported = 3

// Display geometry.
const (
	Width  = 320
	Height = 240

	TileSize   = 8
	GridWidth  = 41
	GridHeight = 31

	// GridZMask marks a grid cell as drawn above the sprite layer.
	GridZMask = 0x40000000
)

// Sprite table layout.  The sprite layer is not rendered, but guest
// programs still maintain the table.
const (
	SpriteCount  = 256
	SpriteStride = 4 // status, tile, x, y

	SpriteHMirrorMask = 0x10000
	SpriteVMirrorMask = 0x20000
)

// AudioBufferSize is the number of samples held between frames.
const AudioBufferSize = 8000
