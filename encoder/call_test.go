package encoder

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/wippyai/hessian"
	herrors "github.com/wippyai/hessian/errors"
	"github.com/wippyai/hessian/protocol"
)

func TestEncode_Call(t *testing.T) {
	tests := []struct {
		name string
		call *protocol.Call
		want []byte
	}{
		{
			name: "no args",
			call: protocol.NewCall("ping"),
			want: cat('c', byte(1), byte(0), 'm', be16(4), "ping", 'z'),
		},
		{
			name: "plain args",
			call: protocol.NewCall("add", int32(1), int32(2)),
			want: cat('c', byte(1), byte(0), 'm', be16(3), "add", i32(1), i32(2), 'z'),
		},
		{
			name: "headers",
			call: protocol.NewCall("get").SetHeader("trace", "t1").SetHeader("auth", nil),
			want: cat('c', byte(1), byte(0),
				'H', be16(5), "trace", text("t1"),
				'H', be16(4), "auth", 'N',
				'm', be16(3), "get", 'z'),
		},
		{
			name: "version",
			call: &protocol.Call{Name: "v", MajorVersion: 2},
			want: cat('c', byte(2), byte(0), 'm', be16(1), "v", 'z'),
		},
		{
			name: "overload with object",
			call: &protocol.Call{
				Name:           "save",
				MajorVersion:   1,
				EnableOverload: true,
				Arguments:      []any{protocol.NewObject("com.example.User"), int64(1), []byte("k")},
			},
			want: cat('c', byte(1), byte(0),
				'm', be16(21), "save_User_long_string",
				'M', 't', be16(16), "com.example.User", 'z',
				'L', be64(1),
				text("k"),
				'z'),
		},
		{
			name: "overload without args",
			call: &protocol.Call{Name: "noop", MajorVersion: 1, EnableOverload: true},
			want: cat('c', byte(1), byte(0), 'm', be16(4), "noop", 'z'),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mustEncode(t, tt.call)
			if !bytes.Equal(got, tt.want) {
				t.Errorf("Encode = %x, want %x", got, tt.want)
			}
		})
	}
}

func TestEncode_CallHeaderKeyType(t *testing.T) {
	headers := hessian.NewMap()
	headers.Set(int32(7), "x")
	call := &protocol.Call{Name: "f", MajorVersion: 1, HeaderMap: headers}

	data, err := Encode(call)
	if !errors.Is(err, ErrHeaderKeyType) {
		t.Fatalf("err = %v, want header key type error", err)
	}
	if data != nil {
		t.Errorf("partial output %x returned with error", data)
	}
	var e *herrors.Error
	if errors.As(err, &e) && e.Value != int32(7) {
		t.Errorf("Value = %v, want offending key 7", e.Value)
	}
}

type headerName string

func TestEncode_CallNamedStringHeaderKey(t *testing.T) {
	headers := hessian.NewMap()
	headers.Set(headerName("trace"), int32(1))
	call := &protocol.Call{Name: "f", MajorVersion: 1, HeaderMap: headers}

	got := mustEncode(t, call)
	want := cat('c', byte(1), byte(0), 'H', be16(5), "trace", i32(1), 'm', be16(1), "f", 'z')
	if !bytes.Equal(got, want) {
		t.Errorf("Encode = %x, want %x", got, want)
	}
}

func TestEncode_CallArgumentErrorPath(t *testing.T) {
	call := protocol.NewCall("f", int32(1), []byte{0x80})

	_, err := Encode(call)
	if !errors.Is(err, ErrStringEncoding) {
		t.Fatalf("err = %v, want string encoding error", err)
	}
	if !strings.Contains(err.Error(), "at args[1]") {
		t.Errorf("Error() = %q, want path args[1]", err.Error())
	}
}

func TestEncode_CallMethodOverflow(t *testing.T) {
	name := strings.Repeat("m", 65530)
	call := &protocol.Call{Name: name, MajorVersion: 1, EnableOverload: true, Arguments: []any{int32(1), int32(2)}}

	// Overload naming pushes the method past the 16-bit length field.
	if _, err := Encode(call); !errors.Is(err, ErrOverflow) {
		t.Errorf("err = %v, want overflow", err)
	}

	call.EnableOverload = false
	if _, err := Encode(call); err != nil {
		t.Errorf("65530-byte method failed: %v", err)
	}
}
