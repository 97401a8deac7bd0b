package constants

// Имя обменника для событий сервиса
const (
	PropertyExchange = "property_exchange"
)

// Ключи маршрутизации
const (
	RoutingKeyPropertyRegistered = "property.registered"
)
