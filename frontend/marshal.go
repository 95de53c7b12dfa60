package frontend

import (
	"bytes"
	"fmt"
	"io"
	"math/big"
	"reflect"
	"sort"

	"github.com/blang/semver/v4"
	"github.com/fxamacker/cbor/v2"

	zkvmbenchmark "github.com/rosemary-crypto/zkvm-benchmark"
	"github.com/rosemary-crypto/zkvm-benchmark/logger"
)

// serializedShape is the on-disk form of a ConstraintSystem: the circuit
// shape only, no witness data.
type serializedShape struct {
	Version     string
	ScalarField string // hex

	NbAdvice    int
	NbInstance  int
	NbSelectors int

	AdviceEquality   []int
	InstanceEquality []int

	Gates []Gate
}

func getTagSet() cbor.TagSet {
	ts := cbor.NewTagSet()
	// https://www.iana.org/assignments/cbor-tags/cbor-tags.xhtml
	// 65536-15309735 Unassigned
	tagNum := uint64(5319800)
	addType := func(t reflect.Type) {
		if err := ts.Add(
			cbor.TagOptions{EncTag: cbor.EncTagRequired, DecTag: cbor.DecTagRequired},
			t,
			tagNum,
		); err != nil {
			panic(err)
		}
		tagNum++
	}

	addType(reflect.TypeOf(Constant{}))
	addType(reflect.TypeOf(AdviceQuery{}))
	addType(reflect.TypeOf(InstanceQuery{}))
	addType(reflect.TypeOf(SelectorQuery{}))
	addType(reflect.TypeOf(Sum{}))
	addType(reflect.TypeOf(Product{}))
	addType(reflect.TypeOf(Negated{}))

	return ts
}

// WriteTo serializes the shape in cbor, prefixed by a version and scalar
// field header.
func (cs *ConstraintSystem) WriteTo(w io.Writer) (int64, error) {
	sh := serializedShape{
		Version:     zkvmbenchmark.Version.String(),
		ScalarField: cs.modulus.Text(16),
		NbAdvice:    cs.nbAdvice,
		NbInstance:  cs.nbInstance,
		NbSelectors: cs.nbSelectors,
		Gates:       cs.gates,
	}
	for i := range cs.adviceEquality {
		sh.AdviceEquality = append(sh.AdviceEquality, i)
	}
	for i := range cs.instanceEquality {
		sh.InstanceEquality = append(sh.InstanceEquality, i)
	}
	sort.Ints(sh.AdviceEquality)
	sort.Ints(sh.InstanceEquality)

	enc, err := cbor.CoreDetEncOptions().EncModeWithTags(getTagSet())
	if err != nil {
		return 0, err
	}
	buf := new(bytes.Buffer)
	if err := enc.NewEncoder(buf).Encode(&sh); err != nil {
		return 0, err
	}
	n, err := w.Write(buf.Bytes())
	return int64(n), err
}

// ReadFrom deserializes a shape previously written with WriteTo. The scalar
// field recorded in the header must match the modulus cs was created with.
func (cs *ConstraintSystem) ReadFrom(r io.Reader) (int64, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return int64(len(data)), err
	}

	dm, err := cbor.DecOptions{}.DecModeWithTags(getTagSet())
	if err != nil {
		return int64(len(data)), err
	}
	var sh serializedShape
	if err := dm.Unmarshal(data, &sh); err != nil {
		return int64(len(data)), err
	}

	if err := cs.checkSerializationHeader(&sh); err != nil {
		return int64(len(data)), err
	}

	cs.nbAdvice = sh.NbAdvice
	cs.nbInstance = sh.NbInstance
	cs.nbSelectors = sh.NbSelectors
	cs.gates = sh.Gates
	cs.adviceEquality = make(map[int]struct{}, len(sh.AdviceEquality))
	for _, i := range sh.AdviceEquality {
		cs.adviceEquality[i] = struct{}{}
	}
	cs.instanceEquality = make(map[int]struct{}, len(sh.InstanceEquality))
	for _, i := range sh.InstanceEquality {
		cs.instanceEquality[i] = struct{}{}
	}

	return int64(len(data)), nil
}

// checkSerializationHeader parses the version and scalar field headers and
// errors on illegal values.
func (cs *ConstraintSystem) checkSerializationHeader(sh *serializedShape) error {
	binaryVersion := zkvmbenchmark.Version
	objectVersion, err := semver.Parse(sh.Version)
	if err != nil {
		return fmt.Errorf("when parsing version header: %w", err)
	}

	if binaryVersion.Compare(objectVersion) != 0 {
		log := logger.Logger()
		log.Warn().Str("binary", binaryVersion.String()).Str("object", objectVersion.String()).Msg("version mismatch between binary and serialized constraint system. there are no guarantees on compatibility")
	}

	scalarField := new(big.Int)
	if _, ok := scalarField.SetString(sh.ScalarField, 16); !ok {
		return fmt.Errorf("when parsing scalar field header: invalid modulus %q", sh.ScalarField)
	}
	if cs.modulus.Sign() != 0 && cs.modulus.Cmp(scalarField) != 0 {
		return fmt.Errorf("serialized shape defined over scalar field %s, expected %s", sh.ScalarField, cs.modulus.Text(16))
	}
	cs.modulus = scalarField
	return nil
}
