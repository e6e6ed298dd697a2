package backend

// Fixture data for mock-data mode and the mock backend. The machines are
// the development fleet snapshot the dashboard ships with.

func FixtureMachines() []Machine {
	return []Machine{
		{
			ID:               "6772c80b0391cbca4d643214",
			MachineName:      "Nicks-Mac-mini.local",
			URLFor404API:     "http://localhost:3000",
			LocalIPAddress:   "192.168.1.193",
			UserHomeDir:      "/Users/nick/Documents/_testData/DevelopmentServerNginx",
			DateCreated:      "2024-12-30T16:19:22.843Z",
			DateLastModified: "2024-12-30T16:19:22.839Z",
			NginxStoragePathOptions: []string{
				"/Users/nick/Documents/_testData/DevelopmentServerNginx/conf.d",
				"/Users/nick/Documents/_testData/Machine01Nginx/sites-available",
			},
		},
		{
			ID:               "67fcb31d408d1b1b3a705f5a",
			MachineName:      "maestro03",
			URLFor404API:     "https://maestro03.the404api.dashanddata.com",
			LocalIPAddress:   "192.168.100.166",
			UserHomeDir:      "/home/nick",
			DateCreated:      "2025-04-14T07:02:53.306Z",
			DateLastModified: "2025-09-28T15:31:12.739Z",
			NginxStoragePathOptions: []string{
				"/home/nick",
				"/etc/nginx/conf.d",
				"/etc/nginx/sites-available",
			},
		},
		{
			ID:               "6805ffdcaa2d0072c1a3502c",
			MachineName:      "nnDev",
			URLFor404API:     "https://nn-dev.the404api.dashanddata.com",
			LocalIPAddress:   "192.168.100.148",
			UserHomeDir:      "/home/shared/",
			DateCreated:      "2025-04-21T08:20:43.520Z",
			DateLastModified: "2025-09-28T01:07:19.540Z",
			NginxStoragePathOptions: []string{
				"/home/shared/",
				"/etc/nginx/conf.d",
				"/etc/nginx/sites-available",
			},
		},
		{
			ID:               "68107161aa2d0072c1a3f689",
			MachineName:      "nnProd",
			URLFor404API:     "https://nn07.the404api.dashanddata.com",
			LocalIPAddress:   "192.168.100.149",
			UserHomeDir:      "/home/shared/",
			DateCreated:      "2025-04-29T06:27:43.893Z",
			DateLastModified: "2025-10-16T15:14:06.397Z",
			NginxStoragePathOptions: []string{
				"/home/shared/",
				"/etc/nginx/conf.d",
				"/etc/nginx/sites-available",
			},
		},
		{
			ID:               "68f831b6c8a57e8067f2cf14",
			MachineName:      "Nicks-MacBook-Air-3.local",
			URLFor404API:     "http://localhost:8000",
			LocalIPAddress:   "10.0.0.123",
			UserHomeDir:      "/home/dashanddata_user",
			DateCreated:      "2025-10-22T01:21:56.976Z",
			DateLastModified: "2025-10-23T21:17:36.809Z",
			NginxStoragePathOptions: []string{
				"/home/dashanddata_user",
				"/Users/nick/Documents/_testData/nginx-sites-confd",
				"/Users/nick/Documents/_testData/nginx-sites-available",
			},
		},
	}
}

func FixtureApps() []Pm2App {
	port3000 := 3000
	port8000 := 8000
	return []Pm2App{
		{Name: "the404-api", Status: StatusOnline, Port: &port3000, CPU: 0.4, Memory: 112 * 1024 * 1024, Uptime: 36 * 60 * 60 * 1000, Restarts: 2},
		{Name: "nginx-manager", Status: StatusOnline, Port: &port8000, CPU: 0.1, Memory: 64 * 1024 * 1024, Uptime: 12 * 60 * 60 * 1000, Restarts: 0},
		{Name: "log-shipper", Status: "stopped", Port: nil, CPU: 0, Memory: 0, Uptime: 0, Restarts: 7},
	}
}
