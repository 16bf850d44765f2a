package types

// ProductKind separates physical goods from licences
type ProductKind string

const (
	ProductKindHardware ProductKind = "hardware"
	ProductKindSoftware ProductKind = "software"
)

func (k ProductKind) Validate() bool {
	return k == ProductKindHardware || k == ProductKindSoftware
}

// OrderStatus is the lifecycle state of an order
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPaid      OrderStatus = "paid"
	OrderStatusCancelled OrderStatus = "cancelled"
)
