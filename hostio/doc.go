// Package hostio exposes the rendering engine to WebAssembly guests as a
// libc-shaped host module.
//
// C programs compiled for wasm32 import snprintf and friends rather than
// carrying a formatting engine of their own. A [Bridge] instantiates a host
// module (conventionally "env") whose functions read the format string and
// va_list from guest linear memory, decode the arguments the template will
// consume, render through the same bounded engine the host uses, and write
// the result back into the guest's buffer:
//
//	bridge := hostio.NewBridge(os.Stdout)
//	if _, err := bridge.Instantiate(ctx, r); err != nil {
//	    ...
//	}
//
// Exported guest imports: snprintf, vsnprintf, printf, vprintf, puts,
// putchar. The variadic and va_list forms share one lowering on wasm32 (a
// pointer to consecutive argument slots), so each pair shares one
// implementation.
//
// The bridge holds no process-wide state: streams and logger travel on the
// Bridge value, and every call works against the calling module's memory.
package hostio
