package constants

// DefaultShopEventsTopic receives one message per registry mutation
const DefaultShopEventsTopic = "shop.events"
