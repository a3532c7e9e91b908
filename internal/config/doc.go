// Package config provides configuration parsing for htmlcomp projects.
//
// The configuration is stored in htmlcomp.json at the project root.
//
// # Configuration File Structure
//
//	{
//	  "name": "my-site",
//	  "source": "pages",
//	  "output": "dist",
//	  "serve": {
//	    "host": "localhost",
//	    "port": 3000
//	  },
//	  "publish": {
//	    "bucket": "my-site-bucket",
//	    "prefix": "site/",
//	    "region": "us-east-1"
//	  }
//	}
//
// All fields are optional; missing fields take defaults. The publish
// section has no default bucket and is validated only by the publish
// command.
package config
