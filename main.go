package main

import (
	"os"

	"github.com/sirupsen/logrus"

	"glamar-shop/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		logrus.WithError(err).Error("glamar-shop exited")
		os.Exit(1)
	}
}
