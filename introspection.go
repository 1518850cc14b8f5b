// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/graphqldoc

package graphqldoc

// IntrospectionOperationName is the operation executed from IntrospectionQuery.
const IntrospectionOperationName = "IntrospectionQuery"

// IntrospectionQuery is the fixed query used to fetch a complete schema description.
const IntrospectionQuery = `query IntrospectionQuery {
  __schema {
    queryType { name }
    mutationType { name }
    subscriptionType { name }
    types {
      ...FullType
    }
  }
}

fragment FullType on __Type {
  kind
  name
  description
  fields(includeDeprecated: true) {
    name
    description
    args {
      ...InputValue
    }
    type {
      ...TypeRef
    }
    isDeprecated
    deprecationReason
  }
  inputFields {
    ...InputValue
  }
  interfaces {
    ...TypeRef
  }
  enumValues(includeDeprecated: true) {
    name
    description
    isDeprecated
    deprecationReason
  }
  possibleTypes {
    ...TypeRef
  }
}

fragment InputValue on __InputValue {
  name
  description
  type {
    ...TypeRef
  }
  defaultValue
}

fragment TypeRef on __Type {
  kind
  name
  ofType {
    kind
    name
    ofType {
      kind
      name
      ofType {
        kind
        name
        ofType {
          kind
          name
          ofType {
            kind
            name
            ofType {
              kind
              name
              ofType {
                kind
                name
              }
            }
          }
        }
      }
    }
  }
}
`

// GraphQLRequest is the JSON body posted to a GraphQL endpoint.
type GraphQLRequest struct {
	Query         string `json:"query"`
	OperationName string `json:"operationName"`
}

// IntrospectionRequest is the request executed against endpoints.
var IntrospectionRequest = GraphQLRequest{
	Query:         IntrospectionQuery,
	OperationName: IntrospectionOperationName,
}
