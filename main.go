/*
main.go

Copyright © 2025 Code Monkey Cybersecurity
Contact: git@cybermonkey.net.au

This file is part of Pythia.

This software is dual-licensed under the Do No Harm License
and the GNU Affero General Public License v3 (AGPL-3.0-or-later).
You may use, modify, and distribute it under the terms of either license.

See LICENSE.agpl and LICENSE.dnh for full details.
*/
package main

import (
	"go.uber.org/zap"

	"github.com/CodeMonkeyCybersecurity/pythia/cmd"
	"github.com/CodeMonkeyCybersecurity/pythia/pkg/logger"
	"github.com/CodeMonkeyCybersecurity/pythia/pkg/shared"
	"github.com/CodeMonkeyCybersecurity/pythia/pkg/telemetry"
)

func main() {
	logger.InitializeWithFallback()

	if err := telemetry.Init(shared.AppName); err != nil {
		logger.L().Warn("Telemetry init failed, continuing without it", zap.Error(err))
	}

	cmd.Execute()
}
