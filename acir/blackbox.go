package acir

// FunctionInput names a witness together with the bit width it should be
// truncated to before being fed into a blackbox (hash) function.
type FunctionInput struct {
	Witness Witness
	NumBits uint32
}

// BlackBoxKind enumerates the supported blackbox function calls, per the
// blackbox dispatcher's routing table.
type BlackBoxKind uint8

const (
	BlackBoxAND BlackBoxKind = iota
	BlackBoxXOR
	BlackBoxRANGE
	BlackBoxSHA256
	BlackBoxBlake2s
	BlackBoxKeccak256
	BlackBoxKeccak256VariableLength
	BlackBoxHashToField128
	BlackBoxSchnorrVerify
	BlackBoxPedersen
	BlackBoxEcdsaSecp256k1
	BlackBoxFixedBaseScalarMul
	BlackBoxRecursiveAggregation
)

func (k BlackBoxKind) String() string {
	switch k {
	case BlackBoxAND:
		return "AND"
	case BlackBoxXOR:
		return "XOR"
	case BlackBoxRANGE:
		return "RANGE"
	case BlackBoxSHA256:
		return "SHA256"
	case BlackBoxBlake2s:
		return "Blake2s"
	case BlackBoxKeccak256:
		return "Keccak256"
	case BlackBoxKeccak256VariableLength:
		return "Keccak256VariableLength"
	case BlackBoxHashToField128:
		return "HashToField128"
	case BlackBoxSchnorrVerify:
		return "SchnorrVerify"
	case BlackBoxPedersen:
		return "Pedersen"
	case BlackBoxEcdsaSecp256k1:
		return "EcdsaSecp256k1"
	case BlackBoxFixedBaseScalarMul:
		return "FixedBaseScalarMul"
	case BlackBoxRecursiveAggregation:
		return "RecursiveAggregation"
	default:
		return "Unknown"
	}
}

// BlackBoxCall is a single blackbox opcode invocation. Only the fields
// relevant to Kind are populated; this mirrors the teacher's tagged-struct
// style (constraint.Instruction decoded per-blueprint) rather than a Rust-
// style closed enum, since Go has no sum types.
type BlackBoxCall struct {
	Kind BlackBoxKind

	// AND, XOR
	LHS, RHS FunctionInput
	Output   Witness

	// RANGE
	Input FunctionInput

	// SHA256, Blake2s, Keccak256, Keccak256VariableLength
	Inputs         []FunctionInput
	Outputs        [2]Witness
	VarMessageSize *FunctionInput // set only for Keccak256VariableLength

	// HashToField128
	HashOutput Witness

	// SchnorrVerify
	PublicKeyX, PublicKeyY FunctionInput
	SignatureS, SignatureE FunctionInput
	Message                []FunctionInput
	VerifyOutput           Witness

	// Pedersen
	DomainSeparator uint32
	PedersenOutputs [2]Witness

	// EcdsaSecp256k1
	Signature     [64]FunctionInput
	HashedMessage []FunctionInput

	// FixedBaseScalarMul
	ScalarInput      FunctionInput
	ScalarMulOutputs [2]Witness
}

// FunctionInputs returns every witness the call reads, for the "are all
// inputs assigned" precondition check.
func (c BlackBoxCall) FunctionInputs() []FunctionInput {
	switch c.Kind {
	case BlackBoxAND, BlackBoxXOR:
		return []FunctionInput{c.LHS, c.RHS}
	case BlackBoxRANGE:
		return []FunctionInput{c.Input}
	case BlackBoxSHA256, BlackBoxBlake2s, BlackBoxKeccak256:
		return c.Inputs
	case BlackBoxKeccak256VariableLength:
		inputs := append([]FunctionInput{}, c.Inputs...)
		if c.VarMessageSize != nil {
			inputs = append(inputs, *c.VarMessageSize)
		}
		return inputs
	case BlackBoxHashToField128:
		return c.Inputs
	case BlackBoxSchnorrVerify:
		inputs := []FunctionInput{c.PublicKeyX, c.PublicKeyY, c.SignatureS, c.SignatureE}
		return append(inputs, c.Message...)
	case BlackBoxPedersen:
		return c.Inputs
	case BlackBoxEcdsaSecp256k1:
		inputs := append([]FunctionInput{c.PublicKeyX, c.PublicKeyY}, c.Signature[:]...)
		return append(inputs, c.HashedMessage...)
	case BlackBoxFixedBaseScalarMul:
		return []FunctionInput{c.ScalarInput}
	case BlackBoxRecursiveAggregation:
		return nil
	default:
		return nil
	}
}
