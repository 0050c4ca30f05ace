package scaffold

import (
	"fmt"
	"strings"
)

// ProjectSpec describes one project to materialize: either a full registry
// definition or a synthesized skeleton for a category ref with no definition.
type ProjectSpec struct {
	Name        string // kebab-case project name
	Pascal      string // PascalName(Name), the contract identifier
	Title       string
	Description string
	Category    string

	// Payloads; when empty the renderer falls back to a minimal skeleton.
	ContractContent string
	TestContent     string
	DocContent      string
}

// TemplateRenderer produces the text of each generated file. The engine only
// decides where files go; what goes in them is the renderer's concern, so a
// stricter renderer (one that validates payload syntax, say) can be swapped
// in without touching the directory-building logic.
type TemplateRenderer interface {
	Contract(spec ProjectSpec) string
	Test(spec ProjectSpec) string
	HardhatConfig(spec ProjectSpec) string
	PackageJSON(spec ProjectSpec) string
	TSConfig(spec ProjectSpec) string
	DeployScript(spec ProjectSpec) string
	Readme(spec ProjectSpec) string
}

// textRenderer is the default renderer: purely textual substitution into
// fixed skeletons, no validation. Payloads are copied faithfully; a malformed
// contract is written as-is and surfaces later at compile time.
type textRenderer struct{}

// NewTextRenderer returns the default substitution-only renderer.
func NewTextRenderer() TemplateRenderer {
	return textRenderer{}
}

func (textRenderer) Contract(spec ProjectSpec) string {
	if spec.ContractContent != "" {
		return ensureTrailingNewline(spec.ContractContent)
	}
	return fmt.Sprintf(`// SPDX-License-Identifier: MIT
pragma solidity ^0.8.24;

import { FHE, euint32, externalEuint32 } from "@fhevm/solidity/lib/FHE.sol";
import { SepoliaConfig } from "@fhevm/solidity/config/ZamaConfig.sol";

contract %s is SepoliaConfig {
    euint32 private _value;

    function setValue(externalEuint32 value, bytes calldata proof) external {
        _value = FHE.fromExternal(value, proof);
        FHE.allowThis(_value);
        FHE.allow(_value, msg.sender);
    }

    function getValue() external view returns (euint32) {
        return _value;
    }
}
`, spec.Pascal)
}

func (textRenderer) Test(spec ProjectSpec) string {
	if spec.TestContent != "" {
		return ensureTrailingNewline(spec.TestContent)
	}
	return fmt.Sprintf(`import { expect } from "chai";
import { ethers } from "hardhat";

describe("%s", function () {
  it("deploys", async function () {
    const factory = await ethers.getContractFactory("%s");
    const contract = await factory.deploy();
    await contract.waitForDeployment();
    expect(await contract.getAddress()).to.be.properAddress;
  });
});
`, spec.Pascal, spec.Pascal)
}

func (textRenderer) HardhatConfig(spec ProjectSpec) string {
	return `import "@fhevm/hardhat-plugin";
import "@nomicfoundation/hardhat-toolbox";
import { HardhatUserConfig } from "hardhat/config";

const config: HardhatUserConfig = {
  solidity: {
    version: "0.8.24",
    settings: {
      optimizer: { enabled: true, runs: 800 },
      evmVersion: "cancun",
    },
  },
  networks: {
    hardhat: { chainId: 31337 },
  },
};

export default config;
`
}

func (textRenderer) PackageJSON(spec ProjectSpec) string {
	category := spec.Category
	if category == "" {
		category = "standalone"
	}
	return fmt.Sprintf(`{
  "name": "fhevm-example-%s",
  "version": "1.0.0",
  "description": %q,
  "keywords": ["fhevm", "fhe", %q],
  "scripts": {
    "compile": "hardhat compile",
    "test": "hardhat test",
    "deploy": "hardhat run scripts/deploy.ts"
  },
  "devDependencies": {
    "@fhevm/hardhat-plugin": "^0.1.0",
    "@fhevm/solidity": "^0.7.0",
    "@nomicfoundation/hardhat-toolbox": "^5.0.0",
    "chai": "^4.4.0",
    "ethers": "^6.13.0",
    "hardhat": "^2.24.0",
    "typescript": "^5.4.0"
  }
}
`, spec.Name, spec.Description, category)
}

func (textRenderer) TSConfig(spec ProjectSpec) string {
	return `{
  "compilerOptions": {
    "target": "es2022",
    "module": "commonjs",
    "strict": true,
    "esModuleInterop": true,
    "resolveJsonModule": true,
    "outDir": "dist"
  },
  "include": ["./test", "./scripts"]
}
`
}

func (textRenderer) DeployScript(spec ProjectSpec) string {
	return fmt.Sprintf(`import { ethers } from "hardhat";

async function main() {
  const factory = await ethers.getContractFactory("%s");
  const contract = await factory.deploy();
  await contract.waitForDeployment();
  console.log("%s deployed to:", await contract.getAddress());
}

main().catch((error) => {
  console.error(error);
  process.exitCode = 1;
});
`, spec.Pascal, spec.Pascal)
}

func (textRenderer) Readme(spec ProjectSpec) string {
	title := spec.Title
	if title == "" {
		title = spec.Pascal
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", title)
	if spec.Description != "" {
		b.WriteString(spec.Description)
		b.WriteString("\n\n")
	}
	if spec.DocContent != "" {
		b.WriteString(strings.TrimSpace(spec.DocContent))
		b.WriteString("\n\n")
	}
	fmt.Fprintf(&b, `## Quick start

`+"```bash"+`
npm install
npx hardhat compile
npx hardhat test
`+"```"+`

## Layout

- `+"`contracts/%s.sol`"+` - the example contract
- `+"`test/%s.test.ts`"+` - hardhat test suite
- `+"`scripts/deploy.ts`"+` - deployment script
`, spec.Pascal, spec.Pascal)
	return b.String()
}

// ensureTrailingNewline appends a newline when the payload lacks one, so
// generated files end cleanly regardless of how the payload was authored.
func ensureTrailingNewline(s string) string {
	if strings.HasSuffix(s, "\n") {
		return s
	}
	return s + "\n"
}
