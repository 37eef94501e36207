package ports

type EndpointResolver interface {
	APIBase() string
	NotificationEndpoint() string
}
