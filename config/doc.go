// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package config loads the settings of a script log session.

Configuration is YAML, validated against an embedded JSON schema:

	name: GroovyLog
	version: 1.4.0
	debug: false
	side: client
	config_dir: /home/me/.minecraft/config
	script_root: /home/me/.minecraft/groovy
	default_module: examplemod
	filter: 'level >= 2'
	stacktrace:
	  boundary: groovy.util.GroovyScriptEngine.run
	  noise:
	    - org.codehaus.groovy.runtime
	    - org.kohsuke

Every field is optional; Default documents the fallbacks. After loading,
ApplyEnv lets SCRIPTLOG_DEBUG, SCRIPTLOG_CONFIG_DIR and SCRIPTLOG_SIDE
override the file.

DebugFlag re-reads SCRIPTLOG_DEBUG on every call, so debug mode can be
switched without reopening the session.
*/
package config
