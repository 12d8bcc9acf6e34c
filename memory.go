package snfmt

// Memory is the linear memory a guest-facing rendering call reads templates
// and arguments from and writes rendered text into. The method set is a
// subset of wazero's api.Memory so an engine memory satisfies it directly;
// tests use an in-process implementation.
type Memory interface {
	// Read returns a view of length bytes starting at offset. The view
	// aliases the underlying memory, so writes through it are visible to
	// the guest. ok is false when the range is out of bounds.
	Read(offset, length uint32) ([]byte, bool)
	ReadByte(offset uint32) (byte, bool)
	ReadUint32Le(offset uint32) (uint32, bool)
	ReadUint64Le(offset uint32) (uint64, bool)
	Write(offset uint32, v []byte) bool
	WriteByte(offset uint32, v byte) bool
}
