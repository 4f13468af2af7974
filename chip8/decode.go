package chip8

/// Mnemonic identifies a decoded CHIP-8 operation.
///
type Mnemonic uint8

/// All decodable operations. OpNull is anything outside of the known
/// opcode families; it executes as a no-op.
///
const (
	OpNull Mnemonic = iota
	OpCLS
	OpRET
	OpJP
	OpCALL
	OpSEImm
	OpSNEImm
	OpSEReg
	OpLDImm
	OpADDImm
	OpLDReg
	OpOR
	OpAND
	OpXOR
	OpADDReg
	OpSUB
	OpSHR
	OpSUBN
	OpSHL
	OpSNEReg
	OpLDI
	OpJPV0
	OpRND
	OpDRW
	OpSKP
	OpSKNP
	OpLDVxDT
	OpLDVxK
	OpLDDTVx
	OpLDSTVx
	OpADDI
	OpLDF
	OpLDB
	OpLDIVx
	OpLDVxI
)

var mnemonics = [...]string{
	OpNull:   "NULL",
	OpCLS:    "CLS",
	OpRET:    "RET",
	OpJP:     "JP",
	OpCALL:   "CALL",
	OpSEImm:  "SE",
	OpSNEImm: "SNE",
	OpSEReg:  "SE",
	OpLDImm:  "LD",
	OpADDImm: "ADD",
	OpLDReg:  "LD",
	OpOR:     "OR",
	OpAND:    "AND",
	OpXOR:    "XOR",
	OpADDReg: "ADD",
	OpSUB:    "SUB",
	OpSHR:    "SHR",
	OpSUBN:   "SUBN",
	OpSHL:    "SHL",
	OpSNEReg: "SNE",
	OpLDI:    "LD",
	OpJPV0:   "JP",
	OpRND:    "RND",
	OpDRW:    "DRW",
	OpSKP:    "SKP",
	OpSKNP:   "SKNP",
	OpLDVxDT: "LD",
	OpLDVxK:  "LD",
	OpLDDTVx: "LD",
	OpLDSTVx: "LD",
	OpADDI:   "ADD",
	OpLDF:    "LD",
	OpLDB:    "LD",
	OpLDIVx:  "LD",
	OpLDVxI:  "LD",
}

func (m Mnemonic) String() string {
	if int(m) < len(mnemonics) {
		return mnemonics[m]
	}

	return "??"
}

/// Instruction is a single decoded opcode along with its operands.
///
type Instruction struct {
	Op Mnemonic

	/// Raw is the 16-bit instruction word.
	///
	Raw uint16

	/// X and Y are the register operands.
	///
	X, Y byte

	/// N is the low nibble, NN the low byte and NNN the 12-bit address.
	///
	N   byte
	NN  byte
	NNN uint16
}

/// Decode a 16-bit instruction word. The top nibble selects the opcode
/// family. Families 0x0, 0x8 and 0xE are keyed on the low nibble, and
/// 0xF on the low byte. Unknown encodings decode to OpNull.
///
func Decode(op uint16) Instruction {
	inst := Instruction{
		Raw: op,
		X:   byte(op >> 8 & 0xF),
		Y:   byte(op >> 4 & 0xF),
		N:   byte(op & 0xF),
		NN:  byte(op & 0xFF),
		NNN: op & AddressMask,
	}

	switch op >> 12 {
	case 0x0:
		switch inst.N {
		case 0x0:
			inst.Op = OpCLS
		case 0xE:
			inst.Op = OpRET
		}
	case 0x1:
		inst.Op = OpJP
	case 0x2:
		inst.Op = OpCALL
	case 0x3:
		inst.Op = OpSEImm
	case 0x4:
		inst.Op = OpSNEImm
	case 0x5:
		inst.Op = OpSEReg
	case 0x6:
		inst.Op = OpLDImm
	case 0x7:
		inst.Op = OpADDImm
	case 0x8:
		switch inst.N {
		case 0x0:
			inst.Op = OpLDReg
		case 0x1:
			inst.Op = OpOR
		case 0x2:
			inst.Op = OpAND
		case 0x3:
			inst.Op = OpXOR
		case 0x4:
			inst.Op = OpADDReg
		case 0x5:
			inst.Op = OpSUB
		case 0x6:
			inst.Op = OpSHR
		case 0x7:
			inst.Op = OpSUBN
		case 0xE:
			inst.Op = OpSHL
		}
	case 0x9:
		inst.Op = OpSNEReg
	case 0xA:
		inst.Op = OpLDI
	case 0xB:
		inst.Op = OpJPV0
	case 0xC:
		inst.Op = OpRND
	case 0xD:
		inst.Op = OpDRW
	case 0xE:
		switch inst.N {
		case 0xE:
			inst.Op = OpSKP
		case 0x1:
			inst.Op = OpSKNP
		}
	case 0xF:
		switch inst.NN {
		case 0x07:
			inst.Op = OpLDVxDT
		case 0x0A:
			inst.Op = OpLDVxK
		case 0x15:
			inst.Op = OpLDDTVx
		case 0x18:
			inst.Op = OpLDSTVx
		case 0x1E:
			inst.Op = OpADDI
		case 0x29:
			inst.Op = OpLDF
		case 0x33:
			inst.Op = OpLDB
		case 0x55:
			inst.Op = OpLDIVx
		case 0x65:
			inst.Op = OpLDVxI
		}
	}

	return inst
}
