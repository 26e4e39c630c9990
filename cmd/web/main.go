// @title           HealthAtlas API
// @version         1.0
// @description     Healthcare-provider directory backend: auth, provider
// @description     application intake, and NPI directory CSV import.
// @host            localhost:8080
// @BasePath        /

package main

import "healthatlas_backend/internal/app"

func main() {
	app.Run()
}
