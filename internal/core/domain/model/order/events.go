package order

// ChangeKind names a lifecycle change that is announced to other systems.
type ChangeKind string

const (
	ChangeCreated  ChangeKind = "order.created"
	ChangeCanceled ChangeKind = "order.canceled"
)
