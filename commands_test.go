package dali

import "testing"

func TestCommandFrames(t *testing.T) {
	tests := []struct {
		input *Command
		err   error
		frame Frame
	}{
		{input: mustCommand(Off(Broadcast{})), frame: NewFrame(0xff00)},
		{input: mustCommand(Off(5)), frame: NewFrame(0x0b00)},
		{input: mustCommand(RecallMaxLevel(Group(0))), frame: NewFrame(0x8105)},
		{input: mustCommand(GoToScene(Group(3), 2)), frame: NewFrame(0x8712)},
		{input: mustCommand(ArcPower(Broadcast{}, 254)), frame: NewFrame(0xfefe)},
		{input: mustCommand(ArcPower(Short(5), 128)), frame: NewFrame(0x0a80)},
		{input: mustCommand(StoreDTRAsShortAddress(0)), frame: NewFrame(0x0180)},
		{input: mustCommand(QueryActualLevel(Broadcast{})), frame: NewFrame(0xffa0)},
		{input: mustCommand(Terminate()), frame: NewFrame(0xa100)},
		{input: mustCommand(SetDTR(0x2a)), frame: NewFrame(0xa32a)},
		{input: mustCommand(Initialise(0)), frame: NewFrame(0xa500)},
		{input: mustCommand(Randomise()), frame: NewFrame(0xa700)},
		{input: mustCommand(Compare()), frame: NewFrame(0xa900)},
		{input: mustCommand(SearchAddrH(0x12)), frame: NewFrame(0xb112)},
		{input: mustCommand(ProgramShortAddress(5)), frame: NewFrame(0xb70b)},
		{input: mustCommand(VerifyShortAddress(5)), frame: NewFrame(0xb90b)},
		{input: mustCommand(QueryShortAddress()), frame: NewFrame(0xbb00)},
		{input: mustCommand(EnableDeviceType(1)), frame: NewFrame(0xc101)},
		{input: mustCommand(QueryEmergencyMode(1)), frame: NewFrame(0x03fa)},
		{input: mustCommand(StartFunctionTest(Broadcast{})), frame: NewFrame(0xffe3)},
	}

	for i, test := range tests {
		if test.input.Frame() != test.frame {
			t.Errorf("tests[%d] expected %v got %v", i, test.frame, test.input.Frame())
		}
	}
}

func TestQueryResponses(t *testing.T) {
	yes := NewBackwardFrame(0xff)

	tests := []struct {
		input    *Command
		expected Response
	}{
		{mustCommand(QueryStatus(0)), NewStatusResponse(yes)},
		{mustCommand(QueryBallast(0)), NewYesNoResponse(yes)},
		{mustCommand(QueryActualLevel(0)), NewResponse(yes)},
		{mustCommand(Compare()), NewYesNoResponse(yes)},
		{mustCommand(VerifyShortAddress(1)), NewYesNoResponse(yes)},
		{mustCommand(QueryEmergencyStatus(0)), NewEmergencyStatusResponse(yes)},
	}

	for i, test := range tests {
		r := test.input.Response(yes)
		if r == nil {
			t.Errorf("tests[%d] expected a response", i)
			continue
		}
		// the factory must produce the declared concrete type
		if sprintf("%T", r) != sprintf("%T", test.expected) {
			t.Errorf("tests[%d] expected %T got %T", i, test.expected, r)
		}
	}
}

func TestNonQueryResponse(t *testing.T) {
	cmd := mustCommand(Off(0))
	if r := cmd.Response(NewBackwardFrame(0xff)); r != nil {
		t.Errorf("expected nil response got %v", r)
	}
}
