package cmd

type Config struct {
	HTTPPort                        string
	DBHost                          string
	DBPort                          string
	DBUser                          string
	DBPassword                      string
	DBName                          string
	DBSslMode                       string
	KafkaHost                       string
	KafkaShipmentCreatedTopic       string
	KafkaShipmentStatusUpdatedTopic string
	SeedData                        bool
}
