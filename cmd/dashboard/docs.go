package main

// @title Operations Dashboard API
// @version 1.0
// @description Inventory, route and sales summaries for a warehouse operator, with the event surface the browser renderer drives.

// @contact.name API Support
// @contact.url http://github.com/charakka/opsboard

// @license.name MIT
// @license.url https://github.com/charakka/opsboard/blob/main/LICENSE

// @host localhost:8090
// @BasePath /

// @tag.name Dashboard
// @tag.description Render projections: table, chart, alerts, KPIs

// @tag.name Events
// @tag.description User events updating the session's selection state

// @tag.name Products
// @tag.description Product creation

// @tag.name Health
// @tag.description Health check endpoints
