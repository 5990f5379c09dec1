// Package pkgconfig reads the service configuration.
//
// Code depends on the Config interface; Viper is the implementation. Values
// come from a YAML file and can be overridden from the environment, either by
// the dotted key in upper case with "_" separators or by an explicit alias
// registered with WithEnvAliases. A .env file can seed the environment first.
package pkgconfig
