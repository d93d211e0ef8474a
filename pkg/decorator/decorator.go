package decorator

// Producer renders a notification message.
type Producer interface {
	Produce() string
}

// Layer wraps a Producer with one more decoration. NewEmail and NewSMS
// satisfy this signature, so they can be passed to Wrap directly.
type Layer func(Producer) Producer

const baseMessage = "Basic Notification"

type baseProducer struct{}

// NewBase returns the innermost producer of every chain.
func NewBase() Producer {
	return baseProducer{}
}

func (baseProducer) Produce() string {
	return baseMessage
}

type emailProducer struct {
	next Producer
}

// NewEmail wraps inner with the email decoration.
// A nil inner is replaced with the base producer.
func NewEmail(inner Producer) Producer {
	if inner == nil {
		inner = NewBase()
	}
	return emailProducer{next: inner}
}

func (p emailProducer) Produce() string {
	return "EmailDecorator(" + p.next.Produce() + ")"
}

type smsProducer struct {
	next Producer
}

// NewSMS wraps inner with the SMS decoration.
// A nil inner is replaced with the base producer.
func NewSMS(inner Producer) Producer {
	if inner == nil {
		inner = NewBase()
	}
	return smsProducer{next: inner}
}

func (p smsProducer) Produce() string {
	return "SmsDecorator(" + p.next.Produce() + ")"
}

// Wrap applies layers to base in order, so the last layer becomes the
// outermost decoration. Nil layers are skipped; a nil base is replaced
// with the base producer.
func Wrap(base Producer, layers ...Layer) Producer {
	if base == nil {
		base = NewBase()
	}
	for _, layer := range layers {
		if layer == nil {
			continue
		}
		base = layer(base)
	}
	return base
}
