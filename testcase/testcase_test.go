package testcase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEntry(t *testing.T) {
	assert := assert.New(t)

	ins := Instruction(0x00100093)
	assert.Equal(KindInstruction, ins.Kind)
	assert.Equal(uint32(0x00100093), ins.Word)
	assert.Equal("0x00100093", ins.String())

	ctl := Control("r1 == 1")
	assert.Equal(KindControl, ctl.Kind)
	assert.Equal("r1 == 1", ctl.Text)
	assert.Equal("? r1 == 1", ctl.String())

	assert.Equal("instruction", KindInstruction.String())
	assert.Equal("control", KindControl.String())
	assert.Equal("Kind(7)", Kind(7).String())
}

func TestCompileEmpty(t *testing.T) {
	assert := assert.New(t)

	prog, sch := Compile(nil)
	assert.NotNil(prog)
	assert.Equal(0, len(prog))
	assert.Equal(0, len(sch))
	assert.Nil(sch.At(0))
}

func TestCompileLayout(t *testing.T) {
	assert := assert.New(t)

	tc := TestCase{
		Control("r0 == 0"),
		Control("r1 == 0"),
		Instruction(0x00100093),
		Control("r1 == 1"),
		Instruction(0x00908293),
		Instruction(0xFFD28293),
		Control("r5 == 7"),
		Control("end"),
	}

	prog, sch := Compile(tc)

	assert.Equal(3, tc.Instructions())
	assert.Equal(Program{
		0x93, 0x00, 0x10, 0x00,
		0x93, 0x82, 0x90, 0x00,
		0x93, 0x82, 0xd2, 0xff,
	}, prog)

	assert.Equal([]string{"r0 == 0", "r1 == 0"}, sch.At(0))
	assert.Equal([]string{"r1 == 1"}, sch.At(1))
	assert.Nil(sch.At(2))
	assert.Equal([]string{"r5 == 7", "end"}, sch.At(3))
}

func TestCompileAddressAssignment(t *testing.T) {
	assert := assert.New(t)

	// A control after the k-th instruction lands on address k.
	for count := range 8 {
		var tc TestCase
		tc = append(tc, Control("before"))
		for k := 1; k <= count; k++ {
			tc = append(tc, Instruction(uint32(k)))
			tc = append(tc, Control("after"))
		}

		_, sch := Compile(tc)

		assert.Equal([]string{"before"}, sch.At(0), count)
		for k := 1; k <= count; k++ {
			assert.Equal([]string{"after"}, sch.At(Address(k)), count)
		}
		assert.Nil(sch.At(Address(count+1)))
	}
}

func TestScheduleAll(t *testing.T) {
	assert := assert.New(t)

	sch := Schedule{
		3: {"end"},
		0: {"r0 == 0"},
		1: {"r1 == 1", "r2 == 2"},
	}

	var addrs []Address
	var lists [][]string
	for addr, list := range sch.All() {
		addrs = append(addrs, addr)
		lists = append(lists, list)
	}

	assert.Equal([]Address{0, 1, 3}, addrs)
	assert.Equal([][]string{{"r0 == 0"}, {"r1 == 1", "r2 == 2"}, {"end"}}, lists)

	count := 0
	for range sch.All() {
		count++
		break
	}
	assert.Equal(1, count)
}

func TestProgramWords(t *testing.T) {
	assert := assert.New(t)

	words := []uint32{0x00100093, 0x00908293, 0xFFD28293}
	var tc TestCase
	for _, word := range words {
		tc = append(tc, Instruction(word))
	}

	prog, _ := Compile(tc)

	var decoded []uint32
	for addr, word := range prog.Words() {
		assert.Equal(Address(len(decoded)), addr)
		decoded = append(decoded, word)
	}
	assert.Equal(words, decoded)

	// Trailing partial words are ignored.
	count := 0
	for range Program([]byte{1, 2, 3}).Words() {
		count++
	}
	assert.Equal(0, count)
}

func FuzzProgramRoundTrip(f *testing.F) {
	f.Add(uint32(0))
	f.Add(uint32(0xffffffff))
	f.Add(uint32(0x00100093))
	f.Add(uint32(0x80000001))

	f.Fuzz(func(t *testing.T, word uint32) {
		assert := assert.New(t)

		prog, sch := Compile(TestCase{Instruction(word)})
		assert.Equal(INSTRUCTION_SIZE, len(prog))
		assert.Equal(0, len(sch))

		for addr, decoded := range prog.Words() {
			assert.Equal(Address(0), addr)
			assert.Equal(word, decoded)
		}
	})
}
