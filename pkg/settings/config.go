package settings

type Config struct {
	Stack    Stack    `mapstructure:"stack"`
	Queue    Queue    `mapstructure:"queue"`
	Circular Circular `mapstructure:"circular"`
	Logger   Logger   `mapstructure:"logger"`
}

// Stack is the configuration for the bounded stack
type Stack struct {
	Capacity int `mapstructure:"capacity" validate:"min=1"`
}

// Queue is the configuration for the linear queue
type Queue struct {
	Capacity int `mapstructure:"capacity" validate:"min=1"`
}

// Circular is the configuration for the circular queue.
// Capacity is the number of slots; with ReserveSlot one of them stays free.
type Circular struct {
	Capacity    int  `mapstructure:"capacity" validate:"min=1"`
	ReserveSlot bool `mapstructure:"reserve_slot"`
}

// Logger is the configuration for the logger
type Logger struct {
	LogLevel    string `mapstructure:"log_level" validate:"oneof=debug info warn error"`
	FileLogName string `mapstructure:"file_log_name"`
	MaxBackups  int    `mapstructure:"max_backups" validate:"min=0"`
	MaxAge      int    `mapstructure:"max_age" validate:"min=0"`
	MaxSize     int    `mapstructure:"max_size" validate:"min=0"`
	Compress    bool   `mapstructure:"compress"`
}

// Default returns the sizes used by the demo scripts.
func Default() Config {
	return Config{
		Stack:    Stack{Capacity: 100},
		Queue:    Queue{Capacity: 50},
		Circular: Circular{Capacity: 5, ReserveSlot: true},
		Logger: Logger{
			LogLevel:   "warn",
			MaxBackups: 3,
			MaxAge:     28,
			MaxSize:    10,
		},
	}
}
