package hostio

import (
	"context"
	"io"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
	"go.uber.org/zap"

	snfmt "github.com/snfmt/snfmt"
	"github.com/snfmt/snfmt/errors"
)

// ModuleName is the import module C toolchains target by default.
const ModuleName = "env"

// Bridge implements the guest-facing formatting calls. A Bridge carries its
// own output stream instead of process-wide stream state, so independent
// instances never share anything.
type Bridge struct {
	stdout io.Writer
}

// NewBridge returns a bridge whose printf-family output goes to stdout.
// A nil stdout discards printed text but still returns correct lengths.
func NewBridge(stdout io.Writer) *Bridge {
	if stdout == nil {
		stdout = io.Discard
	}
	return &Bridge{stdout: stdout}
}

// Instantiate registers the bridge's functions as a host module in r.
// Guests import them as, e.g., (import "env" "snprintf").
func (b *Bridge) Instantiate(ctx context.Context, r wazero.Runtime) (api.Module, error) {
	i32 := api.ValueTypeI32
	builder := r.NewHostModuleBuilder(ModuleName)

	type export struct {
		name    string
		fn      api.GoModuleFunc
		params  []api.ValueType
		results []api.ValueType
	}
	exports := []export{
		{"snprintf", b.snprintf, []api.ValueType{i32, i32, i32, i32}, []api.ValueType{i32}},
		{"vsnprintf", b.snprintf, []api.ValueType{i32, i32, i32, i32}, []api.ValueType{i32}},
		{"printf", b.printf, []api.ValueType{i32, i32}, []api.ValueType{i32}},
		{"vprintf", b.printf, []api.ValueType{i32, i32}, []api.ValueType{i32}},
		{"puts", b.puts, []api.ValueType{i32}, []api.ValueType{i32}},
		{"putchar", b.putchar, []api.ValueType{i32}, []api.ValueType{i32}},
	}
	for _, e := range exports {
		builder.NewFunctionBuilder().
			WithGoModuleFunction(e.fn, e.params, e.results).
			Export(e.name)
	}

	mod, err := builder.Instantiate(ctx)
	if err != nil {
		return nil, errors.Registration(errors.PhaseHost, ModuleName, "formatting", err)
	}
	return mod, nil
}

// snprintf implements int snprintf(char *buf, size_t size, const char *fmt, ...).
// The variadic tail arrives as a pointer to spilled argument slots, which is
// also exactly a va_list, so vsnprintf shares this implementation.
func (b *Bridge) snprintf(_ context.Context, mod api.Module, stack []uint64) {
	var (
		buf    = api.DecodeU32(stack[0])
		size   = api.DecodeU32(stack[1])
		fmtPtr = api.DecodeU32(stack[2])
		vaPtr  = api.DecodeU32(stack[3])
	)
	stack[0] = api.EncodeI32(b.renderToGuest(mod.Memory(), buf, size, fmtPtr, vaPtr))
}

// printf implements int printf(const char *fmt, ...) against the bridge's
// output stream.
func (b *Bridge) printf(_ context.Context, mod api.Module, stack []uint64) {
	var (
		fmtPtr = api.DecodeU32(stack[0])
		vaPtr  = api.DecodeU32(stack[1])
	)
	stack[0] = api.EncodeI32(b.printToStream(mod.Memory(), fmtPtr, vaPtr))
}

// puts implements int puts(const char *s).
func (b *Bridge) puts(_ context.Context, mod api.Module, stack []uint64) {
	ptr := api.DecodeU32(stack[0])
	if ptr == 0 {
		Logger().Warn("puts: null string pointer")
		stack[0] = api.EncodeI32(-1)
		return
	}
	t, err := readCString(mod.Memory(), ptr)
	if err != nil {
		Logger().Warn("puts: bad string", zap.Error(err))
		stack[0] = api.EncodeI32(-1)
		return
	}
	if _, err := io.WriteString(b.stdout, t+"\n"); err != nil {
		stack[0] = api.EncodeI32(-1)
		return
	}
	stack[0] = api.EncodeI32(int32(len(t)) + 1)
}

// putchar implements int putchar(int c).
func (b *Bridge) putchar(_ context.Context, _ api.Module, stack []uint64) {
	c := byte(api.DecodeU32(stack[0]))
	if _, err := b.stdout.Write([]byte{c}); err != nil {
		stack[0] = api.EncodeI32(-1)
		return
	}
	stack[0] = api.EncodeI32(int32(c))
}

// renderToGuest renders directly into the guest's buffer and returns the
// logical length, C snprintf's contract. Guest-side mistakes degrade to -1
// with a log line; they never trap the instance.
func (b *Bridge) renderToGuest(mem snfmt.Memory, buf, size, fmtPtr, vaPtr uint32) int32 {
	format, args, ok := b.decodeCall(mem, fmtPtr, vaPtr)
	if !ok {
		return -1
	}

	var dst []byte
	if size > 0 {
		view, ok := mem.Read(buf, size)
		if !ok {
			Logger().Warn("snprintf: destination out of bounds",
				zap.Uint32("ptr", buf), zap.Uint32("size", size))
			return -1
		}
		dst = view
	}
	return int32(snfmt.Render(dst, format, args...))
}

// printToStream renders to the bridge's output stream and returns the
// number of bytes produced.
func (b *Bridge) printToStream(mem snfmt.Memory, fmtPtr, vaPtr uint32) int32 {
	format, args, ok := b.decodeCall(mem, fmtPtr, vaPtr)
	if !ok {
		return -1
	}
	out := snfmt.Append(nil, format, args...)
	if _, err := b.stdout.Write(out); err != nil {
		return -1
	}
	return int32(len(out))
}

func (b *Bridge) decodeCall(mem snfmt.Memory, fmtPtr, vaPtr uint32) (string, []snfmt.Arg, bool) {
	if fmtPtr == 0 {
		Logger().Warn("format call with null template",
			zap.Error(errors.NilPointer(errors.PhaseHost, "format pointer")))
		return "", nil, false
	}
	format, err := readCString(mem, fmtPtr)
	if err != nil {
		Logger().Warn("format call with bad template", zap.Error(err))
		return "", nil, false
	}
	args, err := CollectArgs(mem, format, vaPtr)
	if err != nil {
		Logger().Warn("format call with bad argument list",
			zap.String("format", format), zap.Error(err))
		return "", nil, false
	}
	return format, args, true
}
