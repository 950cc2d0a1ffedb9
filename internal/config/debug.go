package config

import "os"

func IsDebug() bool {
	return os.Getenv("SERIALSH_DEBUG") == "1"
}
