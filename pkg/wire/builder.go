package wire

// BuildOption configures NewBuilder.
type BuildOption func(*buildConfig)

type buildConfig struct {
	prefix bool
}

// WithPrefix reserves a prefix word in front of the message. It is ignored
// for shapes that do not accept a prefix and for byte-form buffers. Without
// it a prefix word is still reserved when a word buffer is exactly one word
// longer than the message, so reusing a larger scratch buffer yields a NoOp
// prefix; size the buffer to the message or use a growable one to avoid it.
func WithPrefix() BuildOption {
	return func(c *buildConfig) { c.prefix = true }
}

// Builder writes one message into a caller-provided buffer. The first
// failure poisons the builder: later writes are skipped and Finish returns
// that failure.
type Builder struct {
	shape  *Shape
	buf    MutableView
	offset int
	err    error
}

// NewBuilder prepares buf for shape s. It resolves the prefix offset, grows
// buf if it is Growable and too short, zeroes the message extent, writes
// every discriminant and marks every optional field absent. A too-short
// fixed buffer poisons the builder.
func NewBuilder(s *Shape, buf MutableView, opts ...BuildOption) *Builder {
	var cfg buildConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	b := &Builder{shape: s, buf: buf}
	if !s.Supports(buf.Kind()) {
		b.err = s.kindError(buf.Kind())
		return b
	}
	b.offset = buildOffset(s, buf, cfg)
	need := s.Size(buf.Kind()) + b.offset
	if buf.Len() < need {
		if g, ok := buf.(Growable); ok {
			g.EnsureCapacity(need)
		} else {
			b.err = &SizeError{Shape: s.Name, Need: need, Have: buf.Len()}
			return b
		}
	}
	for i := 0; i < need; i++ {
		buf.SetUnit(i, 0)
	}
	for _, d := range s.Discriminants {
		if err := d.emit(buf, b.offset); err != nil {
			b.err = s.annotate(err)
			return b
		}
	}
	for _, f := range s.Fields {
		if err := f.WriteDefault(buf, b.offset); err != nil {
			b.err = s.annotate(err)
			return b
		}
	}
	return b
}

func (b *Builder) apply(write func(buf MutableView, offset int) error) {
	if b.err != nil {
		return
	}
	if err := write(b.buf, b.offset); err != nil {
		b.err = b.shape.annotate(err)
	}
}

// Err returns the first recorded failure.
func (b *Builder) Err() error { return b.err }

// Offset is 1 if the builder reserved a prefix word.
func (b *Builder) Offset() int { return b.offset }

// Finish returns the built message, re-validated through Parse, or the first
// recorded failure. A failed build never yields a Message.
func (b *Builder) Finish() (Message, error) {
	if b.err != nil {
		return Message{}, b.err
	}
	return b.shape.Parse(b.buf)
}
