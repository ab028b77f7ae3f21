// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package api serves the read-only lists a job configuration UI needs to
populate its tool and connection selectors.

Routes:

	GET /api/v1/tools               {"items":[{"name":"cov","value":"cov"}]}
	GET /api/v1/tools/{name}        installation details, name matched ignoring case
	GET /api/v1/connections         {"items":[...]}
	GET /api/v1/connections/{name}  profile details, password masked
	GET /api/v1/environment         contributed variables for ?tool=&instance=&node=&os=&label=,
	                                password masked; only with WithContributor
	GET /health                     OK
	GET /metrics                    Prometheus metrics, when a gatherer is given

Handler panics are recovered, logged with their stack and answered with 500.
*/
package api
